package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/repository"
)

var weekdayHeaders = []string{"WEEK", "MON", "TUE", "WED", "THU", "FRI"}

// FormatRunSummary renders the headline numbers of a run in a box.
func FormatRunSummary(run *domain.ScheduleRun) string {
	lines := []string{
		fmt.Sprintf("%s  %s", Dim("RUN       "), run.ID),
		fmt.Sprintf("%s  %s", Dim("GENERATED "), run.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")),
		fmt.Sprintf("%s  %d", Dim("STUDENTS  "), len(run.Students)),
		fmt.Sprintf("%s  %s", Dim("PLACED    "), StyleGreen.Render(strconv.Itoa(run.Result.AssignedCount()))),
		fmt.Sprintf("%s  %s", Dim("UNASSIGNED"), unassignedCount(len(run.Result.Unassigned))),
		fmt.Sprintf("%s  %d", Dim("SLOTS     "), len(run.Result.Slots)),
	}
	return RenderBox("Schedule "+run.Period(), strings.Join(lines, "\n"))
}

// FormatMonthCalendar renders the month as a week-by-weekday grid. Each cell
// is the day of month followed by the occupancy of its three slots.
func FormatMonthCalendar(run *domain.ScheduleRun) string {
	weeks := GroupWeeks(run.Result.Dates())
	rows := make([][]string, 0, len(weeks))
	for i, week := range weeks {
		row := make([]string, len(weekdayHeaders))
		row[0] = fmt.Sprintf("W%d", i+1)
		for _, date := range week {
			t, err := time.Parse(domain.DateLayout, date)
			if err != nil {
				continue
			}
			col := (int(t.Weekday())+6)%7 + 1
			if col >= len(row) {
				continue
			}
			row[col] = calendarCell(t.Day(), run.Result.SlotsOn(date))
		}
		rows = append(rows, row)
	}

	title := time.Date(run.Year, time.Month(run.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	var b strings.Builder
	b.WriteString(Header(title) + "\n")
	b.WriteString(RenderTable(weekdayHeaders, rows))
	b.WriteString(Dim(fmt.Sprintf("day  slot1/slot2/slot3 students, capacity %d per slot", domain.MaxCapacity)) + "\n")
	return b.String()
}

func calendarCell(day int, slots []domain.Slot) string {
	counts := make([]string, len(slots))
	for i, s := range slots {
		n := len(s.StudentIDs)
		counts[i] = LoadStyle(n).Render(strconv.Itoa(n))
	}
	return fmt.Sprintf("%02d %s", day, strings.Join(counts, "/"))
}

// WeekCount returns how many weeks FormatWeek can render for run.
func WeekCount(run *domain.ScheduleRun) int {
	return len(GroupWeeks(run.Result.Dates()))
}

// FormatWeek renders one week of a run, 1-based, with the students in every
// slot.
func FormatWeek(run *domain.ScheduleRun, week int) (string, error) {
	weeks := GroupWeeks(run.Result.Dates())
	if week < 1 || week > len(weeks) {
		return "", fmt.Errorf("week %d out of range (1-%d)", week, len(weeks))
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week %d of %s", week, run.Period())) + "\n")
	for i, date := range weeks[week-1] {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold(dayLabel(date)) + "\n")
		for _, slot := range run.Result.SlotsOn(date) {
			n := len(slot.StudentIDs)
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				slot.TimeLabel(),
				LoadStyle(n).Render(fmt.Sprintf("%d/%d", n, domain.MaxCapacity)),
				slotNames(run, slot),
			))
		}
	}
	return b.String(), nil
}

func slotNames(run *domain.ScheduleRun, slot domain.Slot) string {
	if len(slot.StudentIDs) == 0 {
		return Dim("-")
	}
	names := make([]string, len(slot.StudentIDs))
	for i, id := range slot.StudentIDs {
		names[i] = studentLabel(run, id)
	}
	return strings.Join(names, ", ")
}

func studentLabel(run *domain.ScheduleRun, id string) string {
	if name := run.StudentName(id); name != "" {
		return fmt.Sprintf("%s (%s)", name, id)
	}
	return id
}

// FormatUnassigned lists students the run could not place, with the likely
// reason. Unassigned students are advisory, not an error.
func FormatUnassigned(run *domain.ScheduleRun) string {
	if len(run.Result.Unassigned) == 0 {
		return StyleGreen.Render(fmt.Sprintf("All %d students placed.", len(run.Students))) + "\n"
	}

	byID := domain.IndexByID(run.Students)
	var b strings.Builder
	b.WriteString(Header("Unassigned") + "\n")
	for _, id := range run.Result.Unassigned {
		reason := "preferred days full or blocked by NG"
		switch s, ok := byID[id]; {
		case !ok:
			reason = "not in roster"
		case len(s.PreferredDays) == 0:
			reason = "no preferred days"
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleYellow.Render(studentLabel(run, id)), Dim(reason)))
	}
	return b.String()
}

// FormatRunList renders stored runs, newest first.
func FormatRunList(runs []repository.ScheduleRunSummary) string {
	if len(runs) == 0 {
		return Dim("No schedules generated yet. Run 'lessonslot schedule generate --month YYYY-MM'.") + "\n"
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			TruncID(r.ID),
			fmt.Sprintf("%04d-%02d", r.Year, r.Month),
			r.GeneratedAt.UTC().Format("2006-01-02 15:04"),
			strconv.Itoa(r.Assigned),
			unassignedCount(r.Unassigned),
		})
	}
	return Header("Schedules") + "\n" + RenderTable([]string{"RUN", "MONTH", "GENERATED", "PLACED", "UNASSIGNED"}, rows)
}

// FormatCheck renders the outcome of re-verifying a run.
func FormatCheck(errs []error) string {
	if len(errs) == 0 {
		return StyleGreen.Render("OK") + " capacity, NG pairs and placements verified\n"
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("%d problems found", len(errs))) + "\n")
	for _, err := range errs {
		b.WriteString("  " + StyleRed.Render("x") + " " + err.Error() + "\n")
	}
	return b.String()
}

func unassignedCount(n int) string {
	if n > 0 {
		return StyleYellow.Render(strconv.Itoa(n))
	}
	return StyleDim.Render("0")
}
