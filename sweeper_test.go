package queuectl_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
	"github.com/queuectl/queuectl/store"
)

func TestSweeperRemovesCompletedJobs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()
	observer := store.NewObserver(db)

	enqueue(t, db, testJob("done", "true", 3))
	claimer := store.NewClaimer(db)
	claimed, err := claimer.ClaimNext(ctx, "w1", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, claimer.Complete(ctx, claimed.ID, now))
	enqueue(t, db, testJob("waiting", "true", 3))

	sweeper := queuectl.NewSweeper(store.NewCleaner(db), &queuectl.SweepConfig{
		Interval: 20 * time.Millisecond,
	}, slog.Default())
	require.NoError(t, sweeper.Start(ctx))
	defer func() { _ = sweeper.Stop(time.Second) }()

	require.Eventually(t, func() bool {
		jb, err := observer.Get(ctx, "done")
		return err == nil && jb == nil
	}, 3*time.Second, 20*time.Millisecond)

	jb, err := observer.Get(ctx, "waiting")
	require.NoError(t, err)
	require.NotNil(t, jb)
	require.Equal(t, job.StatePending, jb.State)
}

func TestSweeperLifecycle(t *testing.T) {
	sweeper := queuectl.NewSweeper(store.NewCleaner(newTestDB(t)), &queuectl.SweepConfig{
		Interval: time.Hour,
	}, slog.Default())

	ctx := context.Background()
	require.NoError(t, sweeper.Start(ctx))
	require.ErrorIs(t, sweeper.Start(ctx), queuectl.ErrDoubleStarted)
	require.NoError(t, sweeper.Stop(time.Second))
	require.ErrorIs(t, sweeper.Stop(time.Second), queuectl.ErrDoubleStopped)
}
