package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/service"
)

// FormatStudentList renders the roster as a table in roster order.
func FormatStudentList(students []domain.Student) string {
	if len(students) == 0 {
		return Dim("No students yet. Add one with 'lessonslot student add' or import a CSV.") + "\n"
	}

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.ID, Bold(s.Name), JoinDays(s.PreferredDays), JoinIDs(s.NGWith)})
	}

	var b strings.Builder
	b.WriteString(Header("Students") + "\n")
	b.WriteString(RenderTable([]string{"ID", "NAME", "DAYS", "NG"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%d students", len(students))) + "\n")
	return b.String()
}

// FormatImportReport summarizes a roster import with its skipped lines and
// roster warnings.
func FormatImportReport(r *service.ImportReport) string {
	var b strings.Builder

	mode := "merged into roster"
	if r.Replaced {
		mode = "replaced roster"
	}
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Imported %d students", r.Imported)) + Dim(" ("+mode+")") + "\n")
	if r.HeaderSkipped {
		b.WriteString(Dim("Header line skipped.") + "\n")
	}

	if len(r.Skipped) > 0 {
		b.WriteString("\n" + Header("Skipped lines") + "\n")
		for _, row := range r.Skipped {
			b.WriteString(fmt.Sprintf("  %s  %s\n", StyleYellow.Render(row.Error()), Dim(row.Raw)))
		}
	}

	b.WriteString(FormatWarnings(r.Warnings))
	return b.String()
}

// FormatWarnings renders roster warnings, or nothing when there are none.
func FormatWarnings(warnings []error) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + Header("Warnings") + "\n")
	for _, w := range warnings {
		b.WriteString("  " + StyleYellow.Render("!") + " " + w.Error() + "\n")
	}
	return b.String()
}
