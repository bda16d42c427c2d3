package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/lessonslot/internal/db"
	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/repository"
	"github.com/alexanderramin/lessonslot/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type fixture struct {
	db       *sql.DB
	students *repository.SQLiteStudentRepo
	runs     *repository.SQLiteScheduleRunRepo
	uow      db.UnitOfWork
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:       database,
		students: repository.NewSQLiteStudentRepo(database),
		runs:     repository.NewSQLiteScheduleRunRepo(database),
		uow:      testutil.NewTestUoW(database),
		observer: &recordingObserver{},
	}
}

func (f *fixture) rosterService() RosterService {
	return NewRosterService(f.students, f.uow, f.observer)
}

func (f *fixture) scheduleService() ScheduleService {
	return NewScheduleService(f.students, f.runs, f.uow, f.observer)
}

func (f *fixture) seed(t *testing.T, students ...*domain.Student) {
	t.Helper()
	for _, s := range students {
		require.NoError(t, f.students.Create(context.Background(), s))
	}
}

func ids(students []domain.Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.ID
	}
	return out
}
