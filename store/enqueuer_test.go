package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/store"
)

func TestInsertDuplicateID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	enqueuer := store.NewEnqueuer(db)
	if err := enqueuer.Insert(ctx, pendingJob("dup", now)); err != nil {
		t.Fatal(err)
	}
	err := enqueuer.Insert(ctx, pendingJob("dup", now))
	if !errors.Is(err, queuectl.ErrJobExists) {
		t.Fatalf("expected ErrJobExists, got %v", err)
	}
}

func TestInsertKeepsTimeout(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	timeout := 30
	jb := pendingJob("t", now)
	jb.Timeout = &timeout
	mustInsert(t, db, jb)

	got, err := store.NewObserver(db).Get(ctx, "t")
	if err != nil {
		t.Fatal(err)
	}
	if got.Timeout == nil || *got.Timeout != 30 {
		t.Fatalf("expected timeout 30, got %v", got.Timeout)
	}
}
