package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/lessonslot/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transaction returns Err from the
// FailOn-th ExecContext call (1-based), so tests can break a multi-row write
// half way and check that nothing was committed.
//
// When Table is set only statements naming that table are counted, e.g.
// Table "schedule_placements" with FailOn 1 fails the first placement insert.
// Reads are never counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Table  string
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(ctx, &execCounter{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type execCounter struct {
	db.DBTX
	uow   *FailOnNthExecUoW
	count atomic.Int32
}

func (c *execCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.uow.Table == "" || strings.Contains(query, c.uow.Table) {
		if c.count.Add(1) == c.uow.FailOn {
			return nil, c.uow.Err
		}
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
