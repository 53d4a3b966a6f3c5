package queuectl

import (
	"context"
	"errors"
	"time"

	"github.com/queuectl/queuectl/job"
)

// ErrJobLost indicates that a job was not in the expected state when a
// transition was attempted, typically because another actor removed or
// transitioned it concurrently.
var ErrJobLost = errors.New("job lost")

// Claimer defines the contract a worker uses to take exclusive
// responsibility for jobs and report their outcomes.
//
// A claimed job is bound to the claiming worker's identity for the
// duration of the execution. There is no lease or visibility timeout:
// if the worker dies mid-job, the row stays in processing with that
// worker's id until manual intervention.
type Claimer interface {

	// ClaimNext selects the next due pending job and atomically
	// transitions it to processing bound to workerID.
	//
	// Eligible jobs satisfy state = pending and run_at <= now; the
	// winner is the one with the lowest priority value, ties broken by
	// earliest created_at. Implementations must guarantee that two
	// concurrent claimants cannot both transition the same row: the
	// transition re-checks state = pending, and a zero-row update means
	// the claim failed.
	//
	// Returns (nil, nil) when no job is available.
	ClaimNext(ctx context.Context, workerID string, now time.Time) (*job.Job, error)

	// Complete transitions a processing job to completed and clears its
	// worker binding. Completed jobs are terminal.
	//
	// Returns ErrJobLost if the job is not currently processing.
	Complete(ctx context.Context, id string, now time.Time) error

	// Retry returns a processing job to pending for another attempt:
	// attempts is the new attempt count, runAt the earliest next
	// execution, lastError the failure description (truncated to
	// job.MaxErrorBytes). The worker binding is cleared.
	//
	// Returns ErrJobLost if the job is not currently processing.
	Retry(ctx context.Context, id string, attempts int, runAt time.Time, lastError string, now time.Time) error

	// MoveToDLQ atomically deletes the job row and inserts a dead
	// letter entry recording the attempt count, failure time and last
	// error. Either both happen or neither does.
	//
	// Returns ErrJobLost if the job is not currently processing.
	MoveToDLQ(ctx context.Context, jb *job.Job, attempts int, failedAt time.Time, lastError string) error
}
