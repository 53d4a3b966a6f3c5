// Package job defines the persistent representation of a queued shell
// command and its lifecycle metadata.
//
// A Job carries delivery state (State, Attempts, WorkerID), scheduling
// information (RunAt, Priority) and retry bookkeeping (MaxRetries,
// LastError). A DLQEntry is the terminal form of a job that exhausted
// its retries.
//
// Job values are snapshots of the authoritative state held by the
// storage layer; transitions are performed through the storage
// interfaces, not by mutating fields.
//
// Spec is the external ingest format and is the only type in this
// package intended to be constructed by user-facing code.
package job
