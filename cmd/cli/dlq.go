package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/cmd/cliutil"
	"github.com/queuectl/queuectl/cmd/cliutil/format"
	"github.com/queuectl/queuectl/store"
)

var (
	dlqOutput    string
	dlqOlderThan time.Duration
)

var dlqCmd = &cobra.Command{
	Use:   "dlq",
	Short: "Dead letter queue operations",
}

var dlqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dead letter entries, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		out, err := format.ParseOutputFormat(dlqOutput)
		if err != nil {
			return err
		}
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		entries, err := store.NewObserver(db).ListDLQ(ctx)
		if err != nil {
			return err
		}
		return format.NewFormatter(out, cmd.OutOrStdout()).Format(entries)
	},
}

var dlqRetryCmd = &cobra.Command{
	Use:   "retry <job_id>",
	Short: "Re-enqueue a dead letter entry as a fresh pending job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		restored, err := store.NewDLQ(db).Promote(ctx, args[0], time.Now().UTC())
		if errors.Is(err, queuectl.ErrNotFound) {
			return cliutil.Exitf(1, "job %s not found in DLQ", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Re-enqueued %s from DLQ\n", restored.ID)
		return nil
	},
}

var dlqPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete dead letter entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		var before *time.Time
		if dlqOlderThan > 0 {
			t := time.Now().UTC().Add(-dlqOlderThan)
			before = &t
		}
		count, err := store.NewDLQ(db).Purge(ctx, before)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Purged %d DLQ entries\n", count)
		return nil
	},
}

func init() {
	dlqListCmd.Flags().StringVar(&dlqOutput, "output", "table", "output format (table or json)")
	dlqPurgeCmd.Flags().DurationVar(&dlqOlderThan, "older-than", 0, "only purge entries older than this")
	dlqCmd.AddCommand(dlqListCmd)
	dlqCmd.AddCommand(dlqRetryCmd)
	dlqCmd.AddCommand(dlqPurgeCmd)
}
