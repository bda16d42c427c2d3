package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// ValidateMonth rejects a (year, month) pair that cannot be expanded into a
// calendar grid.
func ValidateMonth(year, month int) error {
	if year <= 0 {
		return fmt.Errorf("year %d must be positive: %w", year, domain.ErrInvalidInput)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d must be between 1 and 12: %w", month, domain.ErrInvalidInput)
	}
	return nil
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsBusinessDay reports whether t falls on Monday through Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BuildCalendar expands a month into its empty slot grid: SlotsPerDay slots
// for every business day, in date then slot index order.
func BuildCalendar(year, month int) ([]domain.Slot, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, err
	}

	days := DaysInMonth(year, month)
	slots := make([]domain.Slot, 0, days*domain.SlotsPerDay)
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if !IsBusinessDay(date) {
			continue
		}
		dateStr := date.Format(domain.DateLayout)
		for idx := 0; idx < domain.SlotsPerDay; idx++ {
			slots = append(slots, domain.Slot{
				Date:       dateStr,
				SlotIndex:  idx,
				StudentIDs: []string{},
			})
		}
	}
	return slots, nil
}
