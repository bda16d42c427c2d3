package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/lessonslot/internal/domain"
)

// ScheduleRunSummary is a list view of a stored run without its slot grid.
type ScheduleRunSummary struct {
	ID          string
	Year        int
	Month       int
	GeneratedAt time.Time
	Assigned    int
	Unassigned  int
}

// StudentRepo stores the roster. List returns students in insertion order.
type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	Upsert(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// ScheduleRunRepo stores generated schedules with their roster snapshot.
type ScheduleRunRepo interface {
	Create(ctx context.Context, run *domain.ScheduleRun) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleRun, error)
	Latest(ctx context.Context, year, month int) (*domain.ScheduleRun, error)
	List(ctx context.Context) ([]ScheduleRunSummary, error)
	Delete(ctx context.Context, id string) error
}
