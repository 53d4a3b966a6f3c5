package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl"
)

// The schema is created verbatim rather than derived from the models:
// the state CHECK constraint and the composite indexes are part of the
// store's contract.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS jobs (
    id TEXT PRIMARY KEY,
    command TEXT NOT NULL,
    state TEXT NOT NULL CHECK(state IN ('pending','processing','completed','failed','dead')),
    attempts INTEGER NOT NULL DEFAULT 0,
    max_retries INTEGER NOT NULL DEFAULT 3,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    run_at TEXT NOT NULL,
    last_error TEXT,
    priority INTEGER NOT NULL DEFAULT 100,
    timeout INTEGER,
    worker_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_jobs_state_runat ON jobs(state, run_at);
CREATE INDEX IF NOT EXISTS idx_jobs_priority ON jobs(priority, created_at);

CREATE TABLE IF NOT EXISTS dlq (
    id TEXT PRIMARY KEY,
    command TEXT NOT NULL,
    attempts INTEGER NOT NULL,
    max_retries INTEGER NOT NULL,
    failed_at TEXT NOT NULL,
    last_error TEXT
);

CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

func defaultConfig() []configModel {
	return []configModel{
		{Key: queuectl.ConfigMaxRetries, Value: strconv.Itoa(queuectl.DefaultMaxRetries)},
		{Key: queuectl.ConfigBackoffBase, Value: strconv.Itoa(queuectl.DefaultBackoffBase)},
		{Key: queuectl.ConfigJobTimeout, Value: strconv.Itoa(queuectl.DefaultJobTimeout)},
	}
}

func initDB(ctx context.Context, db *bun.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	for _, row := range defaultConfig() {
		if _, err := tx.NewInsert().Model(&row).Ignore().Exec(ctx); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

// initRetries bounds the startup race between worker processes racing
// on schema creation.
const initRetries = 8

// linearBackOff waits step, 2*step, 3*step, ... between attempts.
type linearBackOff struct {
	step time.Duration
	next time.Duration
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.next += b.step
	return b.next
}

func (b *linearBackOff) Reset() {
	b.next = 0
}

// InitDB initializes the database schema required by the store.
//
// It creates the jobs, dlq and config tables, the claim indexes, and
// the default config rows inside a single transaction. If any step
// fails, the transaction is rolled back.
//
// InitDB is idempotent and may be safely called multiple times; it
// never modifies existing rows or tables beyond creating missing
// objects. When several processes initialize the same store
// concurrently, a "locked" error is retried with linearly increasing
// backoff; any other error aborts immediately.
func InitDB(ctx context.Context, db *bun.DB) error {
	op := func() (struct{}, error) {
		err := initDB(ctx, db)
		if err != nil && !isLocked(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}
	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(&linearBackOff{step: 100 * time.Millisecond}),
		backoff.WithMaxTries(initRetries),
	)
	return err
}
