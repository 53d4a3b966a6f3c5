// Package store provides the bun-based SQLite implementation of the
// queuectl storage interfaces.
//
// # Overview
//
// The store persists three tables: jobs, dlq and config. It provides:
//
//   - durable persistence with write-ahead logging
//   - an atomic claim: selection and the pending -> processing
//     transition execute as one guarded UPDATE ... RETURNING statement
//   - state-guarded transitions for complete, retry and DLQ moves
//   - idempotent, retrying schema initialization
//
// # Concurrency model
//
// The database file is the only coordination primitive between worker
// processes. Claiming uses a single UPDATE with a subquery so that two
// workers cannot both transition the same row out of pending; every
// other transition re-checks the expected state in its WHERE clause and
// reports a lost job when zero rows are affected.
//
// Connections are opened with WAL mode and a busy timeout, and each
// process funnels statements through a single connection. Multi-step
// operations (DLQ moves, promotions) run in transactions; everything
// else is an autocommit statement.
//
// # Schema
//
// InitDB creates the tables, the (state, run_at) and (priority,
// created_at) indexes, and the default config rows, all inside one
// transaction. It is idempotent and safe to run from several processes
// at once: "locked" errors during the startup race are retried with
// linearly increasing backoff.
//
// The jobs.state column is constrained to the full enumerated set,
// including the unused failed and dead values.
package store
