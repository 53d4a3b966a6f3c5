package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

// Claimer implements queuectl.Claimer on the SQL store.
//
// The claim is a single UPDATE ... WHERE id IN (subquery) RETURNING
// statement, so selection and transition are atomic: two workers cannot
// both observe the same row as pending and both transition it. Every
// subsequent transition re-checks the processing state in its WHERE
// clause; a zero-row update means the row was concurrently moved and
// the caller gets queuectl.ErrJobLost.
type Claimer struct {
	db *bun.DB
}

// NewClaimer creates a new SQL-backed Claimer.
//
// The provided *bun.DB must be properly configured and connected.
// Schema initialization must be completed before claiming.
func NewClaimer(db *bun.DB) *Claimer {
	return &Claimer{
		db: db,
	}
}

// ClaimNext transitions the next due pending job to processing bound to
// workerID and returns its snapshot, or (nil, nil) when nothing is due.
//
// Eligibility: state = pending and run_at <= now. Ordering: ascending
// priority, then ascending created_at.
func (c *Claimer) ClaimNext(ctx context.Context, workerID string, now time.Time) (*job.Job, error) {
	sub := c.db.NewSelect().
		Model((*jobModel)(nil)).
		Column("id").
		Where("state = ?", job.StatePending).
		Where("run_at <= ?", now).
		Order("priority ASC", "created_at ASC").
		Limit(1)
	var claimed jobModel
	err := c.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.StateProcessing).
		Set("worker_id = ?", workerID).
		Set("updated_at = ?", now).
		Where("id IN (?)", sub).
		Where("state = ?", job.StatePending).
		Returning("*").
		Scan(ctx, &claimed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return claimed.toJob(), nil
}

// Complete transitions a processing job to completed and clears its
// worker binding. Completed jobs are terminal.
func (c *Claimer) Complete(ctx context.Context, id string, now time.Time) error {
	res, err := c.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.StateCompleted).
		Set("worker_id = NULL").
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("state = ?", job.StateProcessing).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return queuectl.ErrJobLost
	}
	return nil
}

// Retry returns a processing job to pending for another attempt with
// the new attempt count, schedule and error string.
func (c *Claimer) Retry(ctx context.Context, id string, attempts int, runAt time.Time, lastError string, now time.Time) error {
	res, err := c.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.StatePending).
		Set("attempts = ?", attempts).
		Set("run_at = ?", runAt).
		Set("last_error = ?", job.TruncateError(lastError)).
		Set("worker_id = NULL").
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("state = ?", job.StateProcessing).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return queuectl.ErrJobLost
	}
	return nil
}

// MoveToDLQ atomically replaces the job row with a dead letter entry.
// An existing entry under the same id is overwritten.
func (c *Claimer) MoveToDLQ(ctx context.Context, jb *job.Job, attempts int, failedAt time.Time, lastError string) error {
	return c.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		trimmed := job.TruncateError(lastError)
		entry := &dlqModel{
			ID:         jb.ID,
			Command:    jb.Command,
			Attempts:   attempts,
			MaxRetries: jb.MaxRetries,
			FailedAt:   failedAt,
			LastError:  &trimmed,
		}
		_, err := tx.NewInsert().
			Model(entry).
			On("CONFLICT (id) DO UPDATE").
			Set("command = EXCLUDED.command").
			Set("attempts = EXCLUDED.attempts").
			Set("max_retries = EXCLUDED.max_retries").
			Set("failed_at = EXCLUDED.failed_at").
			Set("last_error = EXCLUDED.last_error").
			Exec(ctx)
		if err != nil {
			return err
		}
		res, err := tx.NewDelete().
			Model((*jobModel)(nil)).
			Where("id = ?", jb.ID).
			Where("state = ?", job.StateProcessing).
			Exec(ctx)
		if err != nil {
			return err
		}
		if !isAffected(res) {
			return queuectl.ErrJobLost
		}
		return nil
	})
}
