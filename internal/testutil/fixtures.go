package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/google/uuid"
)

var testStudentCounter atomic.Int64

// Student options
type StudentOption func(*domain.Student)

func WithStudentID(id string) StudentOption {
	return func(s *domain.Student) {
		s.ID = id
	}
}

func WithDays(days ...int) StudentOption {
	return func(s *domain.Student) {
		s.PreferredDays = append([]int{}, days...)
	}
}

func WithNG(ids ...string) StudentOption {
	return func(s *domain.Student) {
		s.NGWith = append([]string{}, ids...)
	}
}

// NewTestStudent returns a student with a unique numeric id and no
// preferences. Lists are non-nil so the value compares equal after a
// round trip through storage.
func NewTestStudent(name string, opts ...StudentOption) *domain.Student {
	s := &domain.Student{
		ID:            fmt.Sprintf("%d", 1000+testStudentCounter.Add(1)),
		Name:          name,
		PreferredDays: []int{},
		NGWith:        []string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run options
type RunOption func(*domain.ScheduleRun)

func WithGeneratedAt(t time.Time) RunOption {
	return func(r *domain.ScheduleRun) {
		r.GeneratedAt = t.UTC().Truncate(time.Second)
	}
}

func WithResult(result domain.ScheduleResult, students []domain.Student) RunOption {
	return func(r *domain.ScheduleRun) {
		r.Result = result
		r.Students = students
	}
}

// NewTestRun returns an empty run for the month: no students and an empty
// result. Use WithResult to fill it.
func NewTestRun(year, month int, opts ...RunOption) *domain.ScheduleRun {
	r := &domain.ScheduleRun{
		ID:          uuid.New().String(),
		Year:        year,
		Month:       month,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Result:      domain.ScheduleResult{Slots: []domain.Slot{}, Unassigned: []string{}},
		Students:    []domain.Student{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
