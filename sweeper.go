package queuectl

import (
	"context"
	"log/slog"
	"time"

	"github.com/queuectl/queuectl/internal"
)

// SweepConfig defines the scheduling and filtering parameters for a
// Sweeper.
//
// Interval defines how often the sweep runs. OlderThan restricts
// deletion to completed jobs whose updated_at is older than now -
// OlderThan; zero sweeps every completed job.
type SweepConfig struct {
	Interval  time.Duration
	OlderThan time.Duration
}

// Sweeper periodically deletes completed jobs through a Cleaner.
//
// Completed jobs are kept for history by default; the sweeper is the
// retention mechanism for deployments that do not want that history to
// grow without bound. It never touches pending or processing rows, nor
// the dead letter queue.
//
// Sweeper has the same strict lifecycle as Worker: Start once, Stop
// once, Stop waits for the task to finish.
type Sweeper struct {
	lcBase
	cleaner   Cleaner
	task      internal.TimerTask
	log       *slog.Logger
	interval  time.Duration
	olderThan time.Duration
}

// NewSweeper creates a sweeper over the given Cleaner. It is not
// started automatically.
func NewSweeper(cleaner Cleaner, config *SweepConfig, log *slog.Logger) *Sweeper {
	return &Sweeper{
		cleaner:   cleaner,
		log:       log,
		interval:  config.Interval,
		olderThan: config.OlderThan,
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	before := time.Now().UTC().Add(-s.olderThan)
	count, err := s.cleaner.Clean(ctx, &before)
	if err != nil {
		s.log.Error("sweep failed", "err", err)
		return
	}
	if count > 0 {
		s.log.Info("swept completed jobs", "count", count)
	}
}

// Start begins periodic sweeping. Returns ErrDoubleStarted if the
// sweeper has already been started.
func (s *Sweeper) Start(ctx context.Context) error {
	if err := s.tryStart(); err != nil {
		return err
	}
	s.task.Start(ctx, s.sweep, s.interval)
	return nil
}

// Stop terminates the background sweep. A non-positive timeout waits
// indefinitely. Returns ErrDoubleStopped if the sweeper is not running.
func (s *Sweeper) Stop(timeout time.Duration) error {
	return s.tryStop(timeout, s.task.Stop)
}
