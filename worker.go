package queuectl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/queuectl/queuectl/internal"
	"github.com/queuectl/queuectl/job"
)

// DefaultPollInterval is the sleep between polls when no job is due.
const DefaultPollInterval = time.Second

// WorkerConfig defines runtime behavior of a Worker.
//
// ID is the worker's identity string, recorded on every job it claims.
// The CLI uses the OS process id as text; when empty, a random UUID is
// assigned.
//
// PollInterval defines how often the worker polls the store for ready
// jobs when the queue is drained.
type WorkerConfig struct {
	ID           string
	PollInterval time.Duration
}

// Worker is the long-lived claim/execute/report loop.
//
// Each poll drains ready jobs one at a time: claim the next due pending
// job, execute its command through the Executor under the effective
// timeout, append the outcome to the per-job log, then either complete
// the job or hand it to the retry policy. The worker is single-threaded
// with respect to the job it is executing; concurrency comes from
// running multiple worker processes against the shared store.
//
// Worker has a strict lifecycle:
//   - Start may only be called once.
//   - Canceling the Start context requests shutdown: no new job is
//     claimed, but the in-flight job, including its durable update,
//     always finishes.
//   - Stop waits until the loop has fully wound down; a non-positive
//     timeout waits indefinitely.
type Worker struct {
	lcBase
	id       string
	claimer  Claimer
	config   ConfigStore
	executor Executor
	logs     *JobLogger
	log      *slog.Logger
	interval time.Duration
	task     internal.TimerTask
}

// NewWorker creates a new Worker instance. The worker is not started
// automatically; call Start to begin processing.
func NewWorker(claimer Claimer, config ConfigStore, executor Executor, logs *JobLogger, cfg *WorkerConfig, log *slog.Logger) *Worker {
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Worker{
		id:       id,
		claimer:  claimer,
		config:   config,
		executor: executor,
		logs:     logs,
		log:      log.With("worker", id),
		interval: interval,
	}
}

// ID returns the worker's identity string.
func (w *Worker) ID() string {
	return w.id
}

// drain claims and executes ready jobs until the store reports none or
// shutdown is requested. The shutdown check happens only between jobs:
// once a job is claimed it runs to its durable conclusion on contexts
// detached from the shutdown signal.
func (w *Worker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		dctx := context.WithoutCancel(ctx)
		jb, err := w.claimer.ClaimNext(dctx, w.id, time.Now().UTC())
		if err != nil {
			w.log.Error("claim failed", "err", err)
			return
		}
		if jb == nil {
			return
		}
		w.run(dctx, jb)
	}
}

func (w *Worker) run(ctx context.Context, jb *job.Job) {
	timeout := w.effectiveTimeout(ctx, jb)
	w.log.Info("job claimed", "id", jb.ID, "attempt", jb.Attempts+1, "timeout", timeout)
	res, err := w.executor.Execute(ctx, jb.Command, timeout)
	now := time.Now().UTC()
	if err != nil {
		w.log.Error("command could not be run", "id", jb.ID, "err", err)
		w.fail(ctx, jb, err.Error(), now)
		return
	}
	if err := w.logs.Append(jb.ID, jb.Command, timeout, now, res); err != nil {
		w.log.Warn("cannot append job log", "id", jb.ID, "err", err)
	}
	if res.ExitCode == 0 {
		if err := w.claimer.Complete(ctx, jb.ID, now); err != nil {
			w.log.Error("cannot complete job", "id", jb.ID, "err", err)
			return
		}
		w.log.Info("job completed", "id", jb.ID)
		return
	}
	errMsg := res.Stderr
	if res.TimedOut {
		errMsg = fmt.Sprintf("timeout after %ds", int(timeout/time.Second))
	} else if errMsg == "" {
		errMsg = fmt.Sprintf("exit code %d", res.ExitCode)
	}
	w.fail(ctx, jb, errMsg, now)
}

// fail applies the retry policy to a failed attempt: reschedule with
// exponential backoff, or move to the dead letter queue once the next
// attempt count would exceed the ceiling.
func (w *Worker) fail(ctx context.Context, jb *job.Job, errMsg string, now time.Time) {
	next := jb.Attempts + 1
	if next > jb.MaxRetries {
		if err := w.claimer.MoveToDLQ(ctx, jb, next-1, now, errMsg); err != nil {
			w.log.Error("cannot move job to dlq", "id", jb.ID, "err", err)
			return
		}
		w.log.Warn("job moved to dlq", "id", jb.ID, "err", errMsg)
		return
	}
	base, err := w.config.GetInt(ctx, ConfigBackoffBase, DefaultBackoffBase)
	if err != nil {
		w.log.Warn("cannot read backoff base", "err", err)
		base = DefaultBackoffBase
	}
	delay := BackoffDelay(base, next)
	if err := w.claimer.Retry(ctx, jb.ID, next, now.Add(delay), errMsg, now); err != nil {
		w.log.Error("cannot reschedule job", "id", jb.ID, "err", err)
		return
	}
	w.log.Info("job rescheduled", "id", jb.ID, "attempt", next, "delay", delay)
}

// effectiveTimeout resolves the per-job timeout if set, else the
// configured default. Zero means no timeout is enforced.
func (w *Worker) effectiveTimeout(ctx context.Context, jb *job.Job) time.Duration {
	if jb.Timeout != nil {
		return time.Duration(*jb.Timeout) * time.Second
	}
	secs, err := w.config.GetInt(ctx, ConfigJobTimeout, 0)
	if err != nil {
		w.log.Warn("cannot read job timeout", "err", err)
		return DefaultJobTimeout * time.Second
	}
	return time.Duration(secs) * time.Second
}

// Start begins polling and processing jobs.
//
// Start returns ErrDoubleStarted if the worker has already been
// started. Canceling ctx requests graceful shutdown.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.tryStart(); err != nil {
		return err
	}
	w.task.Start(ctx, w.drain, w.interval)
	return nil
}

// Stop shuts the worker down and waits for the loop to finish, which
// includes the currently executing job. A non-positive timeout waits
// indefinitely; otherwise ErrStopTimeout is returned when the deadline
// passes first.
//
// Stop returns ErrDoubleStopped if the worker is not running.
func (w *Worker) Stop(timeout time.Duration) error {
	return w.tryStop(timeout, w.task.Stop)
}
