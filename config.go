package queuectl

import "context"

// Recognized configuration keys. Values are stored as strings in the
// durable config table and read at use time: a change takes effect on
// the next claim or retry that consults it.
const (
	// ConfigMaxRetries is the default retry ceiling applied to newly
	// enqueued jobs that omit max_retries.
	ConfigMaxRetries = "max_retries"

	// ConfigBackoffBase is the integer base of the exponential backoff
	// formula base**attempts.
	ConfigBackoffBase = "backoff_base"

	// ConfigJobTimeout is the default per-execution timeout in seconds
	// for jobs without their own timeout. Zero disables the timeout.
	ConfigJobTimeout = "job_timeout"
)

// Defaults inserted when the store is initialized.
const (
	DefaultMaxRetries  = 3
	DefaultBackoffBase = 2
	DefaultJobTimeout  = 300
)

// ConfigStore is a flat durable key to string mapping.
//
// Config reads are not transactionally coupled to job updates.
type ConfigStore interface {

	// Get returns the stored value, or "" if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// GetInt returns the stored value parsed as an integer, or fallback
	// if the key is absent. A present but unparsable value is an error.
	GetInt(ctx context.Context, key string, fallback int) (int, error)

	// Set upserts a key/value pair.
	Set(ctx context.Context, key, value string) error

	// All returns every stored pair.
	All(ctx context.Context) (map[string]string, error)
}
