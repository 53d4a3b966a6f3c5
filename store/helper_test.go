package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"

	"github.com/queuectl/queuectl/job"
	"github.com/queuectl/queuectl/store"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", "file::memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1) // important for sqlite
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if err := store.InitDB(context.Background(), db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func pendingJob(id string, now time.Time) *job.Job {
	return &job.Job{
		ID:         id,
		Command:    "true",
		State:      job.StatePending,
		MaxRetries: 3,
		Priority:   job.DefaultPriority,
		RunAt:      now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func mustInsert(t *testing.T, db *bun.DB, jb *job.Job) {
	t.Helper()
	if err := store.NewEnqueuer(db).Insert(context.Background(), jb); err != nil {
		t.Fatal(err)
	}
}
