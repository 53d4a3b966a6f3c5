package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/cmd/cliutil/format"
	"github.com/queuectl/queuectl/store"
)

var statusOutput string

type statusReport struct {
	Jobs    *queuectl.Counts `json:"jobs"`
	Workers []int            `json:"workers"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a summary of job states and active workers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		counts, err := store.NewObserver(db).Counts(ctx)
		if err != nil {
			return err
		}
		live := queuectl.NewSupervisor(stateDirs(), log).Live()

		out, err := format.ParseOutputFormat(statusOutput)
		if err != nil {
			return err
		}
		if out == format.JSONFormat {
			return format.NewFormatter(out, cmd.OutOrStdout()).Format(&statusReport{Jobs: counts, Workers: live})
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Jobs:")
		fmt.Fprintf(cmd.OutOrStdout(), "  %11s: %d\n", "pending", counts.Pending)
		fmt.Fprintf(cmd.OutOrStdout(), "  %11s: %d\n", "processing", counts.Processing)
		fmt.Fprintf(cmd.OutOrStdout(), "  %11s: %d\n", "completed", counts.Completed)
		fmt.Fprintf(cmd.OutOrStdout(), "  %11s: %d\n", "in_dlq", counts.DLQ)
		pids := "-"
		if len(live) > 0 {
			pids = strings.Join(lo.Map(live, func(pid int, _ int) string { return strconv.Itoa(pid) }), ", ")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Workers active: %d -> %s\n", len(live), pids)
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusOutput, "output", "table", "output format (table or json)")
}
