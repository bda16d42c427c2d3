package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// RowError describes a roster line that was dropped during import. Dropped
// lines are reported, never fatal.
type RowError struct {
	Line   int
	Raw    string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseResult is the outcome of parsing roster CSV text.
type ParseResult struct {
	Students      []domain.Student
	Skipped       []RowError
	HeaderSkipped bool
}

// ParseRosterCSV reads roster text leniently. The first line is treated as
// a header when it mentions "name" or "id". Each remaining non-blank line is
// id,name[,days[,ng]] where days and ng are semicolon separated and may be
// quoted. Lines that cannot yield an id and a name are skipped and reported
// in Skipped.
func ParseRosterCSV(text string) *ParseResult {
	res := &ParseResult{Students: []domain.Student{}}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	start := 0
	if first := strings.ToLower(lines[0]); strings.Contains(first, "name") || strings.Contains(first, "id") {
		start = 1
		res.HeaderSkipped = true
	}

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			res.Skipped = append(res.Skipped, RowError{Line: i + 1, Raw: line, Reason: "expected at least id and name"})
			continue
		}

		id := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		if id == "" || name == "" {
			res.Skipped = append(res.Skipped, RowError{Line: i + 1, Raw: line, Reason: "blank id or name"})
			continue
		}

		var days []int
		if len(parts) > 2 {
			days = parseDayList(parts[2])
		}
		var ng []string
		if len(parts) > 3 {
			ng = parseIDList(parts[3])
		}

		res.Students = append(res.Students, domain.Student{
			ID:            id,
			Name:          name,
			PreferredDays: nonNilInts(days),
			NGWith:        nonNilStrings(ng),
		})
	}

	return res
}

// parseDayList splits a semicolon list of day numbers. Entries without a
// leading integer are dropped.
func parseDayList(field string) []int {
	field = strings.ReplaceAll(field, `"`, "")
	if strings.TrimSpace(field) == "" {
		return nil
	}
	var days []int
	for _, part := range strings.Split(field, ";") {
		if n, ok := leadingInt(strings.TrimSpace(part)); ok {
			days = append(days, n)
		}
	}
	return days
}

// parseIDList splits a semicolon list of student ids, dropping blanks.
func parseIDList(field string) []string {
	field = strings.ReplaceAll(field, `"`, "")
	var out []string
	for _, part := range strings.Split(field, ";") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// leadingInt parses an optional sign followed by decimal digits from the
// start of s and ignores anything after them, so "12th" reads as 12.
func leadingInt(s string) (int, bool) {
	i, neg := 0, false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	digits := 0
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		digits++
		if n > 1_000_000 {
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func nonNilInts(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
