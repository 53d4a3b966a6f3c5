// Package queuectl implements a persistent, multi-worker background job
// queue for shell commands.
//
// # Overview
//
// Jobs are durable records in an embedded SQLite store. Worker processes
// claim ready jobs atomically, execute their commands through the shell,
// and record the outcome: success completes the job, failure reschedules
// it with exponential backoff until the retry ceiling is reached, after
// which the job is parked in a dead letter queue for inspection or manual
// re-submission.
//
// The durable store is the only coordination primitive between workers.
// There is no shared memory, no in-process pool, and no distributed
// coordination; each worker is an independent OS process whose death
// loses at most its one in-flight job.
//
// # Components
//
//   - Storage interfaces (Enqueuer, Claimer, DLQ, Observer, ConfigStore,
//     Cleaner), implemented by the store subpackage on bun over SQLite.
//   - Worker: claim, execute with timeout, complete or fail; stops
//     gracefully after the current job when its context is canceled.
//   - Supervisor: spawns and signals worker processes, tracked through
//     pid files in the state directory.
//   - ShellExecutor: runs commands via the shell, enforcing the
//     effective timeout.
//   - Sweeper: periodic retention of completed jobs.
//
// # Delivery semantics
//
// A claimed job is owned by exactly one worker: the claim is a single
// guarded UPDATE, so racing claimants cannot both transition the same
// row out of pending. A worker that dies mid-job leaves the row in
// processing; no lease expiry or reclamation is performed.
package queuectl
