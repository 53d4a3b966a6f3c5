package queuectl

import (
	"context"
	"errors"
	"time"

	"github.com/queuectl/queuectl/job"
)

// ErrNotFound indicates that the referenced entry does not exist.
var ErrNotFound = errors.New("not found")

// DLQ provides administrative access to the dead letter queue.
type DLQ interface {

	// Promote re-enqueues a dead letter entry as a fresh pending job:
	// attempts reset to zero, default priority, run_at = now, no error
	// and no per-job timeout. The dead letter entry is removed in the
	// same transaction. Returns the restored job.
	//
	// Returns ErrNotFound if no entry with the given id exists.
	Promote(ctx context.Context, id string, now time.Time) (*job.Job, error)

	// Purge deletes dead letter entries. If before is non-nil, only
	// entries with failed_at <= *before are removed. Returns the number
	// of deleted entries.
	Purge(ctx context.Context, before *time.Time) (int64, error)
}
