package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

// Enqueuer implements queuectl.Enqueuer on the SQL store.
//
// Enqueuer inserts new jobs exactly as materialized by the spec layer;
// it performs no defaulting of its own. Uniqueness of the job id is
// enforced by the primary key.
type Enqueuer struct {
	db *bun.DB
}

// NewEnqueuer creates a new SQL-backed Enqueuer.
//
// Schema initialization must be completed before inserting jobs.
func NewEnqueuer(db *bun.DB) *Enqueuer {
	return &Enqueuer{
		db: db,
	}
}

// Insert persists a new job record.
//
// A primary key collision is surfaced as queuectl.ErrJobExists; the
// caller decides how to present it. If insertion fails, no job is
// created.
func (e *Enqueuer) Insert(ctx context.Context, jb *job.Job) error {
	model := fromJob(jb)
	_, err := e.db.NewInsert().
		Model(model).
		Exec(ctx)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", queuectl.ErrJobExists, jb.ID)
	}
	return err
}
