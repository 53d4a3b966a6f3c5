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

// DLQ implements queuectl.DLQ on the SQL store.
type DLQ struct {
	db *bun.DB
}

// NewDLQ creates SQL-backed dead letter queue administration.
func NewDLQ(db *bun.DB) *DLQ {
	return &DLQ{
		db: db,
	}
}

// Promote moves a dead letter entry back into the jobs table as a
// fresh pending job: attempts reset, default priority, run_at = now,
// error and timeout cleared. The read, insert and delete happen in one
// transaction, so the id never appears in both tables.
func (d *DLQ) Promote(ctx context.Context, id string, now time.Time) (*job.Job, error) {
	var restored *job.Job
	err := d.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var entry dlqModel
		err := tx.NewSelect().
			Model(&entry).
			Where("id = ?", id).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return queuectl.ErrNotFound
		}
		if err != nil {
			return err
		}
		model := &jobModel{
			ID:         entry.ID,
			Command:    entry.Command,
			State:      job.StatePending,
			Attempts:   0,
			MaxRetries: entry.MaxRetries,
			Priority:   job.DefaultPriority,
			CreatedAt:  now,
			UpdatedAt:  now,
			RunAt:      now,
		}
		_, err = tx.NewInsert().
			Model(model).
			On("CONFLICT (id) DO UPDATE").
			Set("command = EXCLUDED.command").
			Set("state = EXCLUDED.state").
			Set("attempts = EXCLUDED.attempts").
			Set("max_retries = EXCLUDED.max_retries").
			Set("priority = EXCLUDED.priority").
			Set("created_at = EXCLUDED.created_at").
			Set("updated_at = EXCLUDED.updated_at").
			Set("run_at = EXCLUDED.run_at").
			Set("last_error = NULL").
			Set("timeout = NULL").
			Set("worker_id = NULL").
			Exec(ctx)
		if err != nil {
			return err
		}
		if _, err := tx.NewDelete().
			Model((*dlqModel)(nil)).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		restored = model.toJob()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restored, nil
}

// Purge deletes dead letter entries, optionally only those failed at or
// before the given time. Returns the number of deleted entries.
func (d *DLQ) Purge(ctx context.Context, before *time.Time) (int64, error) {
	query := d.db.NewDelete().Model((*dlqModel)(nil))
	if before != nil {
		query.Where("failed_at <= ?", before)
	} else {
		query.Where("1 = 1")
	}
	res, err := query.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return getAffected(res), nil
}
