package queuectl

import (
	"context"

	"github.com/queuectl/queuectl/job"
)

// Counts summarizes queue occupancy per state plus the dead letter
// queue size.
type Counts struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Dead       int `json:"dead"`
	DLQ        int `json:"in_dlq"`
}

// Observer provides read-only access to jobs and dead letter entries.
//
// Observer does not modify state and does not participate in claiming;
// it backs the status, list and dlq CLI surfaces. Returned values are
// snapshots and must be treated as immutable views.
type Observer interface {

	// Get returns the job identified by id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*job.Job, error)

	// List returns jobs ordered by created_at ascending. An empty state
	// means no filter; a non-positive limit means no limit.
	List(ctx context.Context, state job.State, limit int) ([]*job.Job, error)

	// ListDLQ returns dead letter entries, newest failed_at first.
	ListDLQ(ctx context.Context) ([]*job.DLQEntry, error)

	// Counts returns per-state job counts and the DLQ size.
	Counts(ctx context.Context) (*Counts, error)
}
