package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonslot/internal/db"
	"github.com/alexanderramin/lessonslot/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	now := nowUTC()
	query := `INSERT INTO students (id, name, preferred_days, ng_with, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		joinDays(s.PreferredDays),
		joinIDs(s.NGWith),
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("student %q: %w", s.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

// Upsert inserts s or overwrites the student with the same id. An existing
// student keeps its roster position.
func (r *SQLiteStudentRepo) Upsert(ctx context.Context, s *domain.Student) error {
	now := nowUTC()
	query := `INSERT INTO students (id, name, preferred_days, ng_with, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			preferred_days = excluded.preferred_days,
			ng_with = excluded.ng_with,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		joinDays(s.PreferredDays),
		joinIDs(s.NGWith),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, name, preferred_days, ng_with FROM students WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}
	return s, nil
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]domain.Student, error) {
	query := `SELECT id, name, preferred_days, ng_with FROM students ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func (r *SQLiteStudentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting student: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted student: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("student %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteStudentRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return fmt.Errorf("clearing students: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*domain.Student, error) {
	var s domain.Student
	var days, ng string
	if err := row.Scan(&s.ID, &s.Name, &days, &ng); err != nil {
		return nil, err
	}
	parsed, err := splitDays(days)
	if err != nil {
		return nil, fmt.Errorf("parsing preferred_days of %q: %w", s.ID, err)
	}
	s.PreferredDays = parsed
	s.NGWith = splitIDs(ng)
	return &s, nil
}
