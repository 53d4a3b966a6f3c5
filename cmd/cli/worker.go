package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/store"
)

var (
	workerCount    int
	sweepInterval  time.Duration
	sweepOlderThan time.Duration
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker operations",
}

var workerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start one or more worker processes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		dirs := stateDirs()
		if err := dirs.Ensure(); err != nil {
			return err
		}
		// Create the schema before spawning to keep the startup race short.
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		_ = db.Close()

		args := []string{
			"worker", "run",
			"--db", viper.GetString("db"),
			"--state-dir", viper.GetString("state_dir"),
			"--log-level", viper.GetString("log_level"),
		}
		if sweepInterval > 0 {
			args = append(args,
				"--sweep-interval", sweepInterval.String(),
				"--sweep-older-than", sweepOlderThan.String(),
			)
		}
		sup := queuectl.NewSupervisor(dirs, log)
		pids, err := sup.Start(ctx, workerCount, args)
		if err != nil {
			return err
		}
		printable := lo.Map(pids, func(pid int, _ int) string { return strconv.Itoa(pid) })
		fmt.Fprintf(cmd.OutOrStdout(), "Started %d worker(s): %s\n", len(pids), strings.Join(printable, ", "))
		return nil
	},
}

var workerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop running workers gracefully",
	RunE: func(cmd *cobra.Command, _ []string) error {
		count, err := queuectl.NewSupervisor(stateDirs(), log).Stop()
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No worker PIDs found.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signaled %d worker(s) to stop. They will finish the current job then exit.\n", count)
		return nil
	},
}

// workerRunCmd is the actual worker process, spawned by worker start.
// It is hidden: users manage workers through start and stop.
var workerRunCmd = &cobra.Command{
	Use:    "run",
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		dirs := stateDirs()
		if err := dirs.Ensure(); err != nil {
			return err
		}
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		id := strconv.Itoa(os.Getpid())
		if err := queuectl.WritePIDFile(dirs, id); err != nil {
			return err
		}
		defer queuectl.RemovePIDFile(dirs, id)

		worker := queuectl.NewWorker(
			store.NewClaimer(db),
			store.NewConfig(db),
			&queuectl.ShellExecutor{},
			queuectl.NewJobLogger(dirs.Logs),
			&queuectl.WorkerConfig{ID: id},
			log,
		)
		if err := worker.Start(ctx); err != nil {
			return err
		}
		var sweeper *queuectl.Sweeper
		if sweepInterval > 0 {
			sweeper = queuectl.NewSweeper(store.NewCleaner(db), &queuectl.SweepConfig{
				Interval:  sweepInterval,
				OlderThan: sweepOlderThan,
			}, log)
			if err := sweeper.Start(ctx); err != nil {
				return err
			}
		}
		log.Info("worker started", "id", id)

		<-ctx.Done()
		log.Info("shutdown requested, finishing current job", "id", id)
		if sweeper != nil {
			_ = sweeper.Stop(0)
		}
		return worker.Stop(0)
	},
}

func init() {
	workerStartCmd.Flags().IntVar(&workerCount, "count", 1, "number of workers to start")
	for _, cmd := range []*cobra.Command{workerStartCmd, workerRunCmd} {
		cmd.Flags().DurationVar(&sweepInterval, "sweep-interval", 0, "periodically delete completed jobs (0 disables)")
		cmd.Flags().DurationVar(&sweepOlderThan, "sweep-older-than", 0, "only sweep completed jobs older than this")
	}
	workerCmd.AddCommand(workerStartCmd)
	workerCmd.AddCommand(workerStopCmd)
	workerCmd.AddCommand(workerRunCmd)
}
