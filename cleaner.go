package queuectl

import (
	"context"
	"time"
)

// Cleaner permanently removes completed jobs from storage.
//
// Cleaner is intended for retention management and administrative
// cleanup. It only ever touches completed jobs; pending and processing
// rows, and the dead letter queue, are out of its reach by construction.
type Cleaner interface {

	// Clean deletes completed jobs. If before is non-nil, only jobs
	// with updated_at <= *before are deleted. Returns the number of
	// deleted rows.
	Clean(ctx context.Context, before *time.Time) (int64, error)
}
