package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/repository"
	"github.com/alexanderramin/lessonslot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService_AddAssignsNextNumericID(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		testutil.NewTestStudent("A", testutil.WithStudentID("3")),
		testutil.NewTestStudent("B", testutil.WithStudentID("x9")),
	)
	svc := f.rosterService()

	s := &domain.Student{Name: "  Mio  ", PreferredDays: []int{2}}
	require.NoError(t, svc.Add(context.Background(), s))

	assert.Equal(t, "4", s.ID)
	assert.Equal(t, "Mio", s.Name)
	got, err := svc.Get(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got.PreferredDays)
	assert.Equal(t, []string{}, got.NGWith)

	ev := f.observer.last()
	assert.Equal(t, "add-student", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "4", ev.Fields["id"])
}

func TestRosterService_AddFirstStudentGetsIDOne(t *testing.T) {
	f := newFixture(t)
	svc := f.rosterService()

	s := &domain.Student{Name: "Taro"}
	require.NoError(t, svc.Add(context.Background(), s))
	assert.Equal(t, "1", s.ID)
}

func TestRosterService_AddRejectsInvalidStudent(t *testing.T) {
	tests := []struct {
		name    string
		student domain.Student
		want    string
	}{
		{"blank name", domain.Student{ID: "1", Name: "  "}, "name is required"},
		{"day zero", domain.Student{ID: "1", Name: "A", PreferredDays: []int{0}}, "preferred day 0"},
		{"day 32", domain.Student{ID: "1", Name: "A", PreferredDays: []int{32}}, "preferred day 32"},
		{"self NG", domain.Student{ID: "1", Name: "A", NGWith: []string{"1"}}, "NG with itself"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s := tt.student

			err := f.rosterService().Add(context.Background(), &s)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.want)
			assert.False(t, f.observer.last().Success)
		})
	}
}

func TestRosterService_AddDuplicateID(t *testing.T) {
	f := newFixture(t)
	f.seed(t, testutil.NewTestStudent("A", testutil.WithStudentID("1")))

	err := f.rosterService().Add(context.Background(), &domain.Student{ID: "1", Name: "B"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestRosterService_Remove(t *testing.T) {
	f := newFixture(t)
	f.seed(t, testutil.NewTestStudent("A", testutil.WithStudentID("1")))
	svc := f.rosterService()
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "1"))
	assert.ErrorIs(t, svc.Remove(ctx, "1"), repository.ErrNotFound)

	students, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestRosterService_ImportMergesByID(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		testutil.NewTestStudent("Old One", testutil.WithStudentID("1")),
		testutil.NewTestStudent("Keep", testutil.WithStudentID("5")),
	)
	svc := f.rosterService()
	ctx := context.Background()

	csv := "ID,Name,PreferredDays,NG_IDs\n1,New One,\"2;3\",\nbroken\n7,Seven,4,1"
	report, err := svc.Import(ctx, csv, false)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.True(t, report.HeaderSkipped)
	assert.False(t, report.Replaced)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 3, report.Skipped[0].Line)

	students, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5", "7"}, ids(students))
	assert.Equal(t, "New One", students[0].Name)
	assert.Equal(t, []int{2, 3}, students[0].PreferredDays)
}

func TestRosterService_ImportReplaceClearsRoster(t *testing.T) {
	f := newFixture(t)
	f.seed(t, testutil.NewTestStudent("Gone", testutil.WithStudentID("9")))
	svc := f.rosterService()
	ctx := context.Background()

	report, err := svc.Import(ctx, "1,Taro,1\n2,Hanako,2", true)
	require.NoError(t, err)
	assert.True(t, report.Replaced)
	assert.False(t, report.HeaderSkipped)

	students, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(students))
}

func TestRosterService_ImportReportsRosterWarnings(t *testing.T) {
	f := newFixture(t)
	svc := f.rosterService()

	report, err := svc.Import(context.Background(), "1,Taro,1,ghost\n2,Hanako,", false)
	require.NoError(t, err)

	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0].Error(), "ghost")
	assert.Contains(t, report.Warnings[1].Error(), "no preferred days")
}

func TestRosterService_ImportRollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	f.seed(t, testutil.NewTestStudent("Existing", testutil.WithStudentID("9")))
	uow := &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 3, Err: assert.AnError}
	svc := NewRosterService(f.students, uow, f.observer)
	ctx := context.Background()

	_, err := svc.Import(ctx, "1,Taro,1\n2,Hanako,2", true)
	require.ErrorIs(t, err, assert.AnError)

	students, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, ids(students), "roster should be untouched after rollback")

	ev := f.observer.last()
	assert.Equal(t, "import-roster", ev.Name)
	assert.False(t, ev.Success)
}

func TestRosterService_NextID(t *testing.T) {
	f := newFixture(t)
	svc := f.rosterService()
	ctx := context.Background()

	id, err := svc.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	f.seed(t,
		testutil.NewTestStudent("A", testutil.WithStudentID("2")),
		testutil.NewTestStudent("B", testutil.WithStudentID("10")),
		testutil.NewTestStudent("C", testutil.WithStudentID("abc")),
	)
	id, err = svc.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "11", id)
}

func TestRosterService_ImportRepeatedIDLastRowWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	report, err := f.rosterService().Import(ctx, "1,Taro,1\n2,Hanako,2\n1,Taro Tanaka,5", false)
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0].Error(), "repeated in import")

	s, err := f.students.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Taro Tanaka", s.Name)
	assert.Equal(t, []int{5}, s.PreferredDays)

	students, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(students))
}

func TestRosterService_AddRejectsCommaInName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.rosterService().Add(ctx, &domain.Student{Name: "Sato, Hanako", PreferredDays: []int{3, 4}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	students, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)
}
