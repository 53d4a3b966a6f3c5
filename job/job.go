package job

import "time"

// DefaultPriority is assigned to jobs that do not specify a priority.
// Lower values are claimed first.
const DefaultPriority = 100

// MaxErrorBytes bounds the size of a stored error string.
const MaxErrorBytes = 8000

// Job represents a persisted request to execute a shell command.
//
// ID is caller-supplied and unique across the jobs table and the dead
// letter queue. Command is an opaque shell command line.
//
// Attempts counts completed execution attempts; it is incremented after
// each failure. MaxRetries is the retry ceiling: once an attempt would
// push Attempts past it, the job is moved to the dead letter queue.
//
// RunAt is the earliest time the job may be claimed. Timeout, when set,
// overrides the configured default execution timeout (seconds).
//
// WorkerID names the owning worker while State is processing and is nil
// otherwise.
//
// Job instances are snapshots of storage state. Mutating fields directly
// does not change the underlying queue; transitions are performed through
// the storage layer.
type Job struct {
	ID      string `json:"id"`
	Command string `json:"command"`

	State      State `json:"state"`
	Attempts   int   `json:"attempts"`
	MaxRetries int   `json:"max_retries"`
	Priority   int   `json:"priority"`

	RunAt     time.Time `json:"run_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Timeout   *int    `json:"timeout,omitempty"`
	LastError string  `json:"last_error,omitempty"`
	WorkerID  *string `json:"worker_id,omitempty"`
}

// DLQEntry is a job parked in the dead letter queue after exhausting its
// retries. ID is the original job id; inserting an entry with an existing
// id replaces the prior one.
type DLQEntry struct {
	ID         string    `json:"id"`
	Command    string    `json:"command"`
	Attempts   int       `json:"attempts"`
	MaxRetries int       `json:"max_retries"`
	FailedAt   time.Time `json:"failed_at"`
	LastError  string    `json:"last_error,omitempty"`
}

// TruncateError bounds an error string to MaxErrorBytes. No structured
// decoding is performed; the cut is a plain byte slice.
func TruncateError(s string) string {
	if len(s) <= MaxErrorBytes {
		return s
	}
	return s[:MaxErrorBytes]
}
