package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// JoinDays renders day numbers as "1, 5, 10", or "--" when empty.
func JoinDays(days []int) string {
	if len(days) == 0 {
		return "--"
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}

// JoinIDs renders ids as "2, 3", or "--" when empty.
func JoinIDs(ids []string) string {
	if len(ids) == 0 {
		return "--"
	}
	return strings.Join(ids, ", ")
}

// GroupWeeks splits sorted slot dates into Monday-to-Sunday weeks. Week 1 is
// the week of the first date. Unparseable dates are dropped.
func GroupWeeks(dates []string) [][]string {
	var weeks [][]string
	var current time.Time
	for _, d := range dates {
		t, err := time.Parse(domain.DateLayout, d)
		if err != nil {
			continue
		}
		monday := t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
		if len(weeks) == 0 || !monday.Equal(current) {
			weeks = append(weeks, nil)
			current = monday
		}
		weeks[len(weeks)-1] = append(weeks[len(weeks)-1], d)
	}
	return weeks
}

// dayLabel renders "2026-04-01" as "Wed 04/01".
func dayLabel(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 01/02")
}
