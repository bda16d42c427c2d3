package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/gocarina/gocsv"
)

// rosterCSVRow mirrors the roster template columns so an export can be
// imported again unchanged. That holds because hand-entered names and ids
// never contain a comma or double quote, and ids never contain ';'.
type rosterCSVRow struct {
	ID            string `csv:"ID"`
	Name          string `csv:"Name"`
	PreferredDays string `csv:"PreferredDays(semicolon sep)"`
	NGIDs         string `csv:"NG_IDs(semicolon sep)"`
}

// RosterCSV renders the roster in the import template layout.
func RosterCSV(students []domain.Student) (string, error) {
	rows := make([]*rosterCSVRow, 0, len(students))
	for _, s := range students {
		days := make([]string, len(s.PreferredDays))
		for i, d := range s.PreferredDays {
			days[i] = strconv.Itoa(d)
		}
		rows = append(rows, &rosterCSVRow{
			ID:            s.ID,
			Name:          s.Name,
			PreferredDays: strings.Join(days, ";"),
			NGIDs:         strings.Join(s.NGWith, ";"),
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("encoding roster csv: %w", err)
	}
	return out, nil
}
