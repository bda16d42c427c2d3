package export

import (
	"sort"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// ScheduleRow is one (slot, student) placement flattened for export.
type ScheduleRow struct {
	Date        string
	Slot        int
	Time        string
	StudentName string
	StudentID   string
	Known       bool
}

// ScheduleRows flattens a result into one row per placed student, sorted by
// date then slot index. Empty slots produce no rows. Names are looked up in
// students; ids missing from it are marked unknown.
func ScheduleRows(result domain.ScheduleResult, students []domain.Student) []ScheduleRow {
	byID := domain.IndexByID(students)

	slots := make([]domain.Slot, len(result.Slots))
	copy(slots, result.Slots)
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].SlotIndex < slots[j].SlotIndex
	})

	var rows []ScheduleRow
	for _, slot := range slots {
		for _, id := range slot.StudentIDs {
			row := ScheduleRow{
				Date:      slot.Date,
				Slot:      slot.SlotIndex + 1,
				Time:      domain.SlotTimeLabel(slot.SlotIndex),
				StudentID: id,
			}
			if s, ok := byID[id]; ok {
				row.StudentName = s.Name
				row.Known = true
			}
			rows = append(rows, row)
		}
	}
	return rows
}
