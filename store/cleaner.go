package store

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl/job"
)

// Cleaner implements queuectl.Cleaner on the SQL store.
//
// Cleaner deletes rows directly from the jobs table and does not
// participate in claiming. Only completed jobs are eligible; the state
// predicate is part of the query, so pending and processing rows are
// never touched.
type Cleaner struct {
	db *bun.DB
}

// NewCleaner creates a new SQL-backed Cleaner.
func NewCleaner(db *bun.DB) *Cleaner {
	return &Cleaner{
		db: db,
	}
}

// Clean deletes completed jobs, optionally only those updated at or
// before the given time. Returns the number of deleted rows.
func (c *Cleaner) Clean(ctx context.Context, before *time.Time) (int64, error) {
	query := c.db.NewDelete().
		Model((*jobModel)(nil)).
		Where("state = ?", job.StateCompleted)
	if before != nil {
		query.Where("updated_at <= ?", before)
	}
	res, err := query.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return getAffected(res), nil
}
