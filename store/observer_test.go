package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/queuectl/queuectl/job"
	"github.com/queuectl/queuectl/store"
)

func TestGetMissing(t *testing.T) {
	db := newTestDB(t)

	got, err := store.NewObserver(db).Get(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for a missing job, got %+v", got)
	}
}

func TestListOrderAndFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	second := pendingJob("second", now)
	first := pendingJob("first", now)
	first.CreatedAt = now.Add(-time.Minute)
	mustInsert(t, db, second)
	mustInsert(t, db, first)

	observer := store.NewObserver(db)
	jobs, err := observer.List(ctx, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 2 || jobs[0].ID != "first" || jobs[1].ID != "second" {
		t.Fatalf("expected created_at ascending order, got %v", jobs)
	}

	claimer := store.NewClaimer(db)
	claimed, err := claimer.ClaimNext(ctx, "w1", now)
	if err != nil {
		t.Fatal(err)
	}
	if err := claimer.Complete(ctx, claimed.ID, now); err != nil {
		t.Fatal(err)
	}

	completed, err := observer.List(ctx, job.StateCompleted, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 1 || completed[0].ID != "first" {
		t.Fatalf("expected only the completed job, got %v", completed)
	}
}

func TestCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, id := range []string{"a", "b", "c", "d"} {
		mustInsert(t, db, pendingJob(id, now))
	}
	claimer := store.NewClaimer(db)

	// a: completed, b: processing, c: in dlq, d: stays pending.
	claimed, _ := claimer.ClaimNext(ctx, "w1", now)
	if err := claimer.Complete(ctx, claimed.ID, now); err != nil {
		t.Fatal(err)
	}
	if _, err := claimer.ClaimNext(ctx, "w1", now); err != nil {
		t.Fatal(err)
	}
	third, err := claimer.ClaimNext(ctx, "w2", now)
	if err != nil {
		t.Fatal(err)
	}
	if err := claimer.MoveToDLQ(ctx, third, 4, now, "boom"); err != nil {
		t.Fatal(err)
	}

	counts, err := store.NewObserver(db).Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts.Pending != 1 || counts.Processing != 1 || counts.Completed != 1 || counts.DLQ != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}
