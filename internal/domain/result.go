package domain

import (
	"fmt"
	"time"
)

// ScheduleResult is the finished slot grid for one month plus the ids of
// students that could not be placed.
type ScheduleResult struct {
	Slots      []Slot
	Unassigned []string
}

// SlotsOn returns the slots dated date, in slot index order.
func (r *ScheduleResult) SlotsOn(date string) []Slot {
	var out []Slot
	for _, s := range r.Slots {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// PlacementOf returns the slot holding studentID, if any.
func (r *ScheduleResult) PlacementOf(studentID string) (Slot, bool) {
	for _, s := range r.Slots {
		for _, id := range s.StudentIDs {
			if id == studentID {
				return s, true
			}
		}
	}
	return Slot{}, false
}

// AssignedCount returns the number of placements across all slots.
func (r *ScheduleResult) AssignedCount() int {
	n := 0
	for _, s := range r.Slots {
		n += len(s.StudentIDs)
	}
	return n
}

// Dates returns the distinct slot dates in grid order.
func (r *ScheduleResult) Dates() []string {
	var dates []string
	seen := make(map[string]bool)
	for _, s := range r.Slots {
		if !seen[s.Date] {
			seen[s.Date] = true
			dates = append(dates, s.Date)
		}
	}
	return dates
}

// Check re-verifies the result against the roster it was built from:
// capacity, NG separation, and that every student appears exactly once
// across the slots and the unassigned list. It returns every violation.
func (r *ScheduleResult) Check(students []Student) []error {
	var errs []error
	byID := IndexByID(students)
	seen := make(map[string]string)

	for _, s := range r.Slots {
		if len(s.StudentIDs) > MaxCapacity {
			errs = append(errs, fmt.Errorf("slot %s holds %d students (max %d)", s.Key(), len(s.StudentIDs), MaxCapacity))
		}
		for i, a := range s.StudentIDs {
			if prev, ok := seen[a]; ok {
				errs = append(errs, fmt.Errorf("student %q placed in %s and %s", a, prev, s.Key()))
			}
			seen[a] = s.Key()
			for _, b := range s.StudentIDs[i+1:] {
				sa, sb := byID[a], byID[b]
				if sa != nil && sa.Conflicts(sb) {
					errs = append(errs, fmt.Errorf("slot %s pairs NG students %q and %q", s.Key(), a, b))
				}
			}
		}
	}

	for _, id := range r.Unassigned {
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("student %q is unassigned but placed in %s", id, prev))
		}
		seen[id] = "unassigned"
	}

	for _, st := range students {
		if _, ok := seen[st.ID]; !ok {
			errs = append(errs, fmt.Errorf("student %q is neither placed nor unassigned", st.ID))
		}
	}

	return errs
}

// ScheduleRun is a persisted schedule generation together with the roster
// snapshot it was computed from.
type ScheduleRun struct {
	ID          string
	Year        int
	Month       int
	GeneratedAt time.Time
	Result      ScheduleResult
	Students    []Student
}

// Period returns the run's month as "YYYY-MM".
func (r *ScheduleRun) Period() string {
	return fmt.Sprintf("%04d-%02d", r.Year, r.Month)
}

// StudentName returns the roster name for id, or "" when the id is not in
// the snapshot.
func (r *ScheduleRun) StudentName(id string) string {
	for _, s := range r.Students {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}
