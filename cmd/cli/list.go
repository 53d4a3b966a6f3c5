package cli

import (
	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/cmd/cliutil"
	"github.com/queuectl/queuectl/cmd/cliutil/format"
	"github.com/queuectl/queuectl/job"
	"github.com/queuectl/queuectl/store"
)

var (
	listState  string
	listOutput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, optionally filtered by state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		var state job.State
		switch listState {
		case "":
		case "pending", "processing", "completed":
			state = job.State(listState)
		default:
			return cliutil.Exitf(2, "invalid state filter: %s (valid: pending, processing, completed)", listState)
		}
		out, err := format.ParseOutputFormat(listOutput)
		if err != nil {
			return err
		}
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		jobs, err := store.NewObserver(db).List(ctx, state, 0)
		if err != nil {
			return err
		}
		return format.NewFormatter(out, cmd.OutOrStdout()).Format(jobs)
	},
}

func init() {
	listCmd.Flags().StringVar(&listState, "state", "", "filter by state (pending, processing, completed)")
	listCmd.Flags().StringVar(&listOutput, "output", "table", "output format (table or json)")
}
