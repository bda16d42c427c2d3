package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// listSeparators are accepted between list entries typed on the command
// line or in a form, including the Japanese comma.
const listSeparators = ",;、"

func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(listSeparators, r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// parseDays parses "1, 5, 10" into day numbers in the given order.
func parseDays(s string) ([]int, error) {
	parts := splitList(s)
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: use numbers like 1,5,10", p)
		}
		days = append(days, d)
	}
	return days, nil
}

// parseIDs parses "2, 3" into ids, dropping blanks.
func parseIDs(s string) []string {
	return splitList(s)
}
