package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lessonslot/internal/db"
	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/repository"
	"github.com/alexanderramin/lessonslot/internal/scheduler"
	"github.com/google/uuid"
)

type scheduleService struct {
	students repository.StudentRepo
	runs     repository.ScheduleRunRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewScheduleService(
	students repository.StudentRepo,
	runs repository.ScheduleRunRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		students: students,
		runs:     runs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate schedules the current roster into the given month and stores the
// run together with a snapshot of the roster. The month is validated before
// the roster is read.
func (s *scheduleService) Generate(ctx context.Context, year, month int) (run *domain.ScheduleRun, err error) {
	fields := map[string]any{"year": year, "month": month}
	defer observe(ctx, s.observer, "generate-schedule", fields)(&err)

	if err := scheduler.ValidateMonth(year, month); err != nil {
		return nil, err
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	result, err := scheduler.Schedule(year, month, students)
	if err != nil {
		return nil, err
	}

	run = &domain.ScheduleRun{
		ID:          uuid.New().String(),
		Year:        year,
		Month:       month,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Result:      result,
		Students:    students,
	}
	fields["run_id"] = run.ID
	fields["students"] = len(students)
	fields["assigned"] = result.AssignedCount()
	fields["unassigned"] = len(result.Unassigned)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScheduleRunRepo(tx).Create(ctx, run)
	})
	if err != nil {
		return nil, fmt.Errorf("saving schedule run: %w", err)
	}
	return run, nil
}

func (s *scheduleService) Get(ctx context.Context, id string) (*domain.ScheduleRun, error) {
	return s.runs.GetByID(ctx, id)
}

func (s *scheduleService) Latest(ctx context.Context, year, month int) (*domain.ScheduleRun, error) {
	if err := scheduler.ValidateMonth(year, month); err != nil {
		return nil, err
	}
	return s.runs.Latest(ctx, year, month)
}

func (s *scheduleService) List(ctx context.Context) ([]repository.ScheduleRunSummary, error) {
	return s.runs.List(ctx)
}

func (s *scheduleService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-schedule", map[string]any{"run_id": id})(&err)
	return s.runs.Delete(ctx, id)
}
