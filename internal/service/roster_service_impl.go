package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lessonslot/internal/db"
	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/importer"
	"github.com/alexanderramin/lessonslot/internal/repository"
)

type rosterService struct {
	students repository.StudentRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRosterService(students repository.StudentRepo, uow db.UnitOfWork, observers ...UseCaseObserver) RosterService {
	return &rosterService{
		students: students,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Add stores a new student. An empty ID is filled with the next numeric id.
func (s *rosterService) Add(ctx context.Context, st *domain.Student) (err error) {
	fields := map[string]any{"name": st.Name}
	defer observe(ctx, s.observer, "add-student", fields)(&err)

	st.ID = strings.TrimSpace(st.ID)
	st.Name = strings.TrimSpace(st.Name)
	if errs := validateStudent(st); len(errs) > 0 {
		return formatValidationErrors(errs)
	}
	if st.PreferredDays == nil {
		st.PreferredDays = []int{}
	}
	if st.NGWith == nil {
		st.NGWith = []string{}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteStudentRepo(tx)
		if st.ID == "" {
			existing, err := repo.List(ctx)
			if err != nil {
				return err
			}
			st.ID = nextNumericID(existing)
		}
		fields["id"] = st.ID
		return repo.Create(ctx, st)
	})
}

func (s *rosterService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.students.GetByID(ctx, id)
}

func (s *rosterService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

func (s *rosterService) Remove(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "remove-student", map[string]any{"id": id})(&err)
	return s.students.Delete(ctx, id)
}

// Import parses a roster CSV and stores every accepted row in one
// transaction. With replace the current roster is cleared first; otherwise
// rows overwrite students with the same id and new ids are appended.
func (s *rosterService) Import(ctx context.Context, text string, replace bool) (report *ImportReport, err error) {
	fields := map[string]any{"replace": replace}
	defer observe(ctx, s.observer, "import-roster", fields)(&err)

	parsed := importer.ParseRosterCSV(text)
	fields["rows"] = len(parsed.Students)
	fields["skipped"] = len(parsed.Skipped)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteStudentRepo(tx)
		if replace {
			if err := repo.DeleteAll(ctx); err != nil {
				return err
			}
		}
		for i := range parsed.Students {
			if err := repo.Upsert(ctx, &parsed.Students[i]); err != nil {
				return fmt.Errorf("storing student %q: %w", parsed.Students[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing roster: %w", err)
	}

	roster, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ImportReport{
		Imported:      len(parsed.Students),
		Replaced:      replace,
		HeaderSkipped: parsed.HeaderSkipped,
		Skipped:       parsed.Skipped,
		Warnings:      append(duplicateRows(parsed.Students), importer.ValidateRoster(roster)...),
	}, nil
}

// duplicateRows warns about ids repeated within one import; the last row
// with a given id is the one stored.
func duplicateRows(students []domain.Student) []error {
	var errs []error
	seen := make(map[string]bool, len(students))
	for _, st := range students {
		if seen[st.ID] {
			errs = append(errs, fmt.Errorf("student %q: repeated in import, last row kept", st.ID))
		}
		seen[st.ID] = true
	}
	return errs
}

// NextID returns one more than the largest numeric student id, or "1" for a
// roster without numeric ids.
func (s *rosterService) NextID(ctx context.Context) (string, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return "", err
	}
	return nextNumericID(students), nil
}

func nextNumericID(students []domain.Student) string {
	max := 0
	for _, st := range students {
		if n, err := strconv.Atoi(st.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
