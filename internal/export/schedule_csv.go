package export

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// ScheduleCSVHeaders are the columns of the schedule export.
var ScheduleCSVHeaders = []string{"Date", "Slot", "Time", "Student Name", "Student ID"}

// unknownStudent fills the name column for ids not in the roster.
const unknownStudent = "Unknown"

// ScheduleCSV renders a result as CSV: a header line, then one line per
// placed student. The name column is always double-quoted; lines are joined
// with "\n" and there is no trailing newline.
func ScheduleCSV(result domain.ScheduleResult, students []domain.Student) string {
	lines := []string{strings.Join(ScheduleCSVHeaders, ",")}
	for _, row := range ScheduleRows(result, students) {
		name := unknownStudent
		if row.Known {
			name = `"` + row.StudentName + `"`
		}
		lines = append(lines, strings.Join([]string{
			row.Date,
			strconv.Itoa(row.Slot),
			row.Time,
			name,
			row.StudentID,
		}, ","))
	}
	return strings.Join(lines, "\n")
}
