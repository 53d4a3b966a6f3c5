package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

// Observer implements queuectl.Observer on the SQL store.
//
// Observer is read-only and does not participate in claiming or
// lifecycle transitions. It backs the status, list and dlq surfaces.
type Observer struct {
	db *bun.DB
}

// NewObserver creates a new SQL-backed Observer.
func NewObserver(db *bun.DB) *Observer {
	return &Observer{
		db: db,
	}
}

// Get returns the job identified by id.
//
// If no job with the given id exists, Get returns (nil, nil).
func (o *Observer) Get(ctx context.Context, id string) (*job.Job, error) {
	var model jobModel
	err := o.db.NewSelect().
		Model(&model).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.toJob(), nil
}

// List returns jobs ordered by created_at ascending. An empty state
// means no filter; a non-positive limit returns all matching jobs.
func (o *Observer) List(ctx context.Context, state job.State, limit int) ([]*job.Job, error) {
	var models []jobModel
	query := o.db.NewSelect().
		Model(&models).
		Order("created_at ASC")
	if state != "" {
		query.Where("state = ?", state)
	}
	if limit > 0 {
		query.Limit(limit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	jobs := make([]*job.Job, len(models))
	for i := range models {
		jobs[i] = models[i].toJob()
	}
	return jobs, nil
}

// ListDLQ returns dead letter entries, newest failed_at first.
func (o *Observer) ListDLQ(ctx context.Context) ([]*job.DLQEntry, error) {
	var models []dlqModel
	err := o.db.NewSelect().
		Model(&models).
		Order("failed_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]*job.DLQEntry, len(models))
	for i := range models {
		entries[i] = models[i].toEntry()
	}
	return entries, nil
}

// Counts returns per-state job counts and the DLQ size.
func (o *Observer) Counts(ctx context.Context) (*queuectl.Counts, error) {
	var rows []struct {
		State job.State `bun:"state"`
		Count int       `bun:"count"`
	}
	err := o.db.NewSelect().
		Model((*jobModel)(nil)).
		Column("state").
		ColumnExpr("count(*) AS count").
		Group("state").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	counts := &queuectl.Counts{}
	for _, row := range rows {
		switch row.State {
		case job.StatePending:
			counts.Pending = row.Count
		case job.StateProcessing:
			counts.Processing = row.Count
		case job.StateCompleted:
			counts.Completed = row.Count
		case job.StateFailed:
			counts.Failed = row.Count
		case job.StateDead:
			counts.Dead = row.Count
		}
	}
	dlq, err := o.db.NewSelect().
		Model((*dlqModel)(nil)).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	counts.DLQ = dlq
	return counts, nil
}
