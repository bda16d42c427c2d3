package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Date", 32},
	{"Slot", 14},
	{"Time", 34},
	{"Student", 80},
	{"ID", 30},
}

// SchedulePDF renders a run as a printable A4 table followed by the list of
// unassigned students. Core PDF fonts only cover Latin-1, so names outside
// it may not render.
func SchedulePDF(run *domain.ScheduleRun) ([]byte, error) {
	if run == nil {
		return nil, fmt.Errorf("pdf requires a schedule run")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetTitle("Lesson schedule "+run.Period(), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Lesson schedule "+run.Period(), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s  |  %d placed  |  %d unassigned",
		run.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), run.Result.AssignedCount(), len(run.Result.Unassigned)),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range ScheduleRows(run.Result, run.Students) {
		name := row.StudentName
		if !row.Known {
			name = unknownStudent
		}
		cells := []string{row.Date, strconv.Itoa(row.Slot), row.Time, tr(name), tr(row.StudentID)}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(run.Result.Unassigned) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Unassigned", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, id := range run.Result.Unassigned {
			label := id
			if name := run.StudentName(id); name != "" {
				label = fmt.Sprintf("%s (%s)", name, id)
			}
			pdf.CellFormat(0, 6, tr(label), "", 1, "", false, 0, "")
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
