package domain

import "fmt"

// MaxCapacity is the maximum number of students in a single slot.
const MaxCapacity = 5

// SlotsPerDay is the number of lesson windows on each business day.
const SlotsPerDay = 3

// DateLayout is the format of Slot.Date.
const DateLayout = "2006-01-02"

// SlotTimes holds the fixed time label for each slot index.
var SlotTimes = [SlotsPerDay]string{"10:00 - 11:30", "13:00 - 14:30", "15:00 - 16:30"}

// Slot is one lesson window on one date.
type Slot struct {
	Date       string
	SlotIndex  int
	StudentIDs []string
}

// TimeLabel returns the fixed time window for the slot's index.
func (s *Slot) TimeLabel() string {
	return SlotTimeLabel(s.SlotIndex)
}

// Full reports whether the slot has reached MaxCapacity.
func (s *Slot) Full() bool {
	return len(s.StudentIDs) >= MaxCapacity
}

// SlotTimeLabel returns the time label for a slot index, or "" when the
// index is out of range.
func SlotTimeLabel(index int) string {
	if index < 0 || index >= SlotsPerDay {
		return ""
	}
	return SlotTimes[index]
}

// Key returns a stable "date#index" identifier.
func (s *Slot) Key() string {
	return fmt.Sprintf("%s#%d", s.Date, s.SlotIndex)
}
