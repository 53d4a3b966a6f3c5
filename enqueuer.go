package queuectl

import (
	"context"
	"errors"

	"github.com/queuectl/queuectl/job"
)

// ErrJobExists is returned when an insert collides with an existing
// job id. Duplicate enqueues are surfaced, never silently ignored.
var ErrJobExists = errors.New("job already exists")

// Enqueuer defines the write-side entry point of the queue.
type Enqueuer interface {

	// Insert persists a new job record.
	//
	// The record is stored exactly as provided; defaulting happens at
	// spec materialization, not here. Implementations must fail with
	// ErrJobExists if the id is already present in the jobs table.
	//
	// If Insert returns a non-nil error, the job must not be considered
	// enqueued.
	Insert(ctx context.Context, jb *job.Job) error
}
