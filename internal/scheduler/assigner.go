package scheduler

import (
	"slices"
	"time"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// Assign walks the prioritized roster once and places each student into the
// first slot, by the student's own day order and then slot index, that has
// room and no NG occupant. Earlier placements are never revisited. Students
// that fit nowhere are returned in processing order.
//
// grid is mutated in place and returned. byID resolves occupant ids for the
// reverse NG check; ids missing from it never conflict.
func Assign(prioritized []domain.Student, grid []domain.Slot, byID map[string]*domain.Student) ([]domain.Slot, []string) {
	byDay := indexGridByDay(grid)
	unassigned := []string{}

	for i := range prioritized {
		student := &prioritized[i]
		if !placeStudent(student, grid, byDay, byID) {
			unassigned = append(unassigned, student.ID)
		}
	}

	return grid, unassigned
}

func placeStudent(student *domain.Student, grid []domain.Slot, byDay map[int][]int, byID map[string]*domain.Student) bool {
	for _, day := range student.PreferredDays {
		// Weekends and days past the end of the month have no slots.
		positions, ok := byDay[day]
		if !ok {
			continue
		}
		for _, pos := range positions {
			slot := &grid[pos]
			if slot.Full() || hasConflict(student, slot, byID) {
				continue
			}
			slot.StudentIDs = append(slot.StudentIDs, student.ID)
			return true
		}
	}
	return false
}

// hasConflict reports whether any occupant of slot is NG with student in
// either direction.
func hasConflict(student *domain.Student, slot *domain.Slot, byID map[string]*domain.Student) bool {
	for _, occupantID := range slot.StudentIDs {
		if student.HasNGWith(occupantID) {
			return true
		}
		if occupant, ok := byID[occupantID]; ok && occupant.HasNGWith(student.ID) {
			return true
		}
	}
	return false
}

// indexGridByDay maps each day of month present in the grid to the grid
// positions of its slots, in ascending slot index.
func indexGridByDay(grid []domain.Slot) map[int][]int {
	idx := make(map[int][]int)
	for i, s := range grid {
		t, err := time.Parse(domain.DateLayout, s.Date)
		if err != nil {
			continue
		}
		idx[t.Day()] = append(idx[t.Day()], i)
	}
	for _, positions := range idx {
		slices.SortStableFunc(positions, func(a, b int) int {
			return grid[a].SlotIndex - grid[b].SlotIndex
		})
	}
	return idx
}
