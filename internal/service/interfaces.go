package service

import (
	"context"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/importer"
	"github.com/alexanderramin/lessonslot/internal/repository"
)

// ImportReport is the outcome of a roster CSV import. Skipped lines and
// warnings are advisory; the import itself succeeded.
type ImportReport struct {
	Imported      int
	Replaced      bool
	HeaderSkipped bool
	Skipped       []importer.RowError
	Warnings      []error
}

type RosterService interface {
	Add(ctx context.Context, s *domain.Student) error
	Get(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Remove(ctx context.Context, id string) error
	Import(ctx context.Context, text string, replace bool) (*ImportReport, error)
	NextID(ctx context.Context) (string, error)
}

type ScheduleService interface {
	Generate(ctx context.Context, year, month int) (*domain.ScheduleRun, error)
	Get(ctx context.Context, id string) (*domain.ScheduleRun, error)
	Latest(ctx context.Context, year, month int) (*domain.ScheduleRun, error)
	List(ctx context.Context) ([]repository.ScheduleRunSummary, error)
	Delete(ctx context.Context, id string) error
}
