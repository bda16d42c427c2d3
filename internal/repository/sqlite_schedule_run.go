package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lessonslot/internal/db"
	"github.com/alexanderramin/lessonslot/internal/domain"
	"github.com/alexanderramin/lessonslot/internal/scheduler"
)

// SQLiteScheduleRunRepo implements ScheduleRunRepo using a SQLite database.
// Only occupied slots are stored; the empty grid is rebuilt from the run's
// month on load. Create issues several inserts and should run inside a
// UnitOfWork.
type SQLiteScheduleRunRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRunRepo creates a new SQLiteScheduleRunRepo.
func NewSQLiteScheduleRunRepo(conn db.DBTX) *SQLiteScheduleRunRepo {
	return &SQLiteScheduleRunRepo{db: conn}
}

func (r *SQLiteScheduleRunRepo) Create(ctx context.Context, run *domain.ScheduleRun) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO schedule_runs (id, year, month, generated_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Year, run.Month, run.GeneratedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("schedule run %q: %w", run.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("inserting schedule run: %w", err)
	}

	for i, s := range run.Students {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedule_run_students (run_id, position, student_id, name, preferred_days, ng_with)
			VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, s.ID, s.Name, joinDays(s.PreferredDays), joinIDs(s.NGWith),
		)
		if err != nil {
			return fmt.Errorf("inserting roster snapshot: %w", err)
		}
	}

	for _, slot := range run.Result.Slots {
		for pos, id := range slot.StudentIDs {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO schedule_placements (run_id, slot_date, slot_index, position, student_id)
				VALUES (?, ?, ?, ?, ?)`,
				run.ID, slot.Date, slot.SlotIndex, pos, id,
			)
			if err != nil {
				return fmt.Errorf("inserting placement %s: %w", slot.Key(), err)
			}
		}
	}

	for i, id := range run.Result.Unassigned {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedule_unassigned (run_id, position, student_id) VALUES (?, ?, ?)`,
			run.ID, i, id,
		)
		if err != nil {
			return fmt.Errorf("inserting unassigned student: %w", err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRunRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleRun, error) {
	var run domain.ScheduleRun
	var generatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, year, month, generated_at FROM schedule_runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.Year, &run.Month, &generatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule run %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule run: %w", err)
	}
	run.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing generated_at: %w", err)
	}

	if run.Students, err = r.loadSnapshot(ctx, run.ID); err != nil {
		return nil, err
	}
	if run.Result.Slots, err = r.loadSlots(ctx, run.ID, run.Year, run.Month); err != nil {
		return nil, err
	}
	if run.Result.Unassigned, err = r.loadUnassigned(ctx, run.ID); err != nil {
		return nil, err
	}
	return &run, nil
}

// Latest returns the most recently generated run for the given month.
func (r *SQLiteScheduleRunRepo) Latest(ctx context.Context, year, month int) (*domain.ScheduleRun, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM schedule_runs WHERE year = ? AND month = ?
		ORDER BY generated_at DESC, rowid DESC LIMIT 1`, year, month,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule run for %04d-%02d: %w", year, month, ErrNotFound)
		}
		return nil, fmt.Errorf("finding latest schedule run: %w", err)
	}
	return r.GetByID(ctx, id)
}

// List returns run summaries, newest first.
func (r *SQLiteScheduleRunRepo) List(ctx context.Context) ([]ScheduleRunSummary, error) {
	query := `SELECT r.id, r.year, r.month, r.generated_at,
			(SELECT COUNT(*) FROM schedule_placements p WHERE p.run_id = r.id),
			(SELECT COUNT(*) FROM schedule_unassigned u WHERE u.run_id = r.id)
		FROM schedule_runs r
		ORDER BY r.generated_at DESC, r.rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedule runs: %w", err)
	}
	defer rows.Close()

	summaries := []ScheduleRunSummary{}
	for rows.Next() {
		var s ScheduleRunSummary
		var generatedAt string
		if err := rows.Scan(&s.ID, &s.Year, &s.Month, &generatedAt, &s.Assigned, &s.Unassigned); err != nil {
			return nil, fmt.Errorf("scanning schedule run row: %w", err)
		}
		if s.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt); err != nil {
			return nil, fmt.Errorf("parsing generated_at: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule runs: %w", err)
	}
	return summaries, nil
}

// Delete removes a run; its snapshot, placements and unassigned rows
// cascade.
func (r *SQLiteScheduleRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted schedule run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule run %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRunRepo) loadSnapshot(ctx context.Context, runID string) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT student_id, name, preferred_days, ng_with FROM schedule_run_students
		WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("loading roster snapshot: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning roster snapshot: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roster snapshot: %w", err)
	}
	return students, nil
}

func (r *SQLiteScheduleRunRepo) loadSlots(ctx context.Context, runID string, year, month int) ([]domain.Slot, error) {
	grid, err := scheduler.BuildCalendar(year, month)
	if err != nil {
		return nil, fmt.Errorf("rebuilding calendar: %w", err)
	}
	byKey := make(map[string]int, len(grid))
	for i, slot := range grid {
		byKey[slot.Key()] = i
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT slot_date, slot_index, student_id FROM schedule_placements
		WHERE run_id = ? ORDER BY slot_date, slot_index, position`, runID)
	if err != nil {
		return nil, fmt.Errorf("loading placements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Slot
		var studentID string
		if err := rows.Scan(&p.Date, &p.SlotIndex, &studentID); err != nil {
			return nil, fmt.Errorf("scanning placement: %w", err)
		}
		i, ok := byKey[p.Key()]
		if !ok {
			return nil, fmt.Errorf("placement %s is outside %04d-%02d", p.Key(), year, month)
		}
		grid[i].StudentIDs = append(grid[i].StudentIDs, studentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating placements: %w", err)
	}
	return grid, nil
}

func (r *SQLiteScheduleRunRepo) loadUnassigned(ctx context.Context, runID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT student_id FROM schedule_unassigned WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("loading unassigned students: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning unassigned student: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unassigned students: %w", err)
	}
	return ids, nil
}
