package repository

import (
	"strconv"
	"strings"
	"time"
)

// listSep separates list values in TEXT columns. It matches the roster CSV
// so stored values read the same as an exported roster.
const listSep = ";"

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, listSep)
}

func splitDays(s string) ([]int, error) {
	days := []int{}
	if s == "" {
		return days, nil
	}
	for _, p := range strings.Split(s, listSep) {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func joinIDs(ids []string) string {
	return strings.Join(ids, listSep)
}

func splitIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSep)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE or PRIMARY KEY
// constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
