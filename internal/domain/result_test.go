package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ValidResult(t *testing.T) {
	students := []Student{
		{ID: "1", NGWith: []string{"2"}},
		{ID: "2"},
		{ID: "3"},
	}
	r := ScheduleResult{
		Slots: []Slot{
			{Date: "2025-04-01", SlotIndex: 0, StudentIDs: []string{"1", "3"}},
			{Date: "2025-04-01", SlotIndex: 1, StudentIDs: []string{"2"}},
		},
		Unassigned: []string{},
	}
	assert.Empty(t, r.Check(students))
}

func TestCheck_ReportsEveryViolation(t *testing.T) {
	students := []Student{
		{ID: "1"},
		{ID: "2", NGWith: []string{"1"}},
		{ID: "3"},
		{ID: "4"},
		{ID: "5"},
		{ID: "6"},
		{ID: "7"},
	}
	r := ScheduleResult{
		Slots: []Slot{
			{Date: "2025-04-01", SlotIndex: 0, StudentIDs: []string{"1", "2", "3", "4", "5", "6"}},
		},
		Unassigned: []string{"3"},
	}

	errs := r.Check(students)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "holds 6 students")
	assert.Contains(t, errs[1].Error(), "NG students")
	assert.Contains(t, errs[2].Error(), "unassigned but placed")
	assert.Contains(t, errs[3].Error(), `"7" is neither placed nor unassigned`)
}

func TestPlacementOf(t *testing.T) {
	r := ScheduleResult{Slots: []Slot{
		{Date: "2025-04-01", SlotIndex: 0},
		{Date: "2025-04-01", SlotIndex: 2, StudentIDs: []string{"a"}},
	}}

	slot, ok := r.PlacementOf("a")
	require.True(t, ok)
	assert.Equal(t, 2, slot.SlotIndex)

	_, ok = r.PlacementOf("b")
	assert.False(t, ok)
}

func TestDatesAndSlotsOn(t *testing.T) {
	r := ScheduleResult{Slots: []Slot{
		{Date: "2025-04-01", SlotIndex: 0},
		{Date: "2025-04-01", SlotIndex: 1, StudentIDs: []string{"x", "y"}},
		{Date: "2025-04-02", SlotIndex: 0, StudentIDs: []string{"z"}},
	}}
	assert.Equal(t, []string{"2025-04-01", "2025-04-02"}, r.Dates())
	assert.Len(t, r.SlotsOn("2025-04-01"), 2)
	assert.Equal(t, 3, r.AssignedCount())
}

func TestScheduleRun_PeriodAndName(t *testing.T) {
	run := ScheduleRun{Year: 2025, Month: 4, Students: []Student{{ID: "1", Name: "Aoi"}}}
	assert.Equal(t, "2025-04", run.Period())
	assert.Equal(t, "Aoi", run.StudentName("1"))
	assert.Equal(t, "", run.StudentName("2"))
}
