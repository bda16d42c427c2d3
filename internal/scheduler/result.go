package scheduler

import "github.com/alexanderramin/lessonslot/internal/domain"

// Finalize packages the filled grid and the unassigned ids into a result.
func Finalize(grid []domain.Slot, unassigned []string) domain.ScheduleResult {
	if unassigned == nil {
		unassigned = []string{}
	}
	return domain.ScheduleResult{Slots: grid, Unassigned: unassigned}
}
