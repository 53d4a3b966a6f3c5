package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/store"
)

var cleanOlderThan time.Duration

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete completed jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		before := time.Now().UTC().Add(-cleanOlderThan)
		count, err := store.NewCleaner(db).Clean(ctx, &before)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed job(s)\n", count)
		return nil
	},
}

func init() {
	cleanCmd.Flags().DurationVar(&cleanOlderThan, "older-than", 0, "only delete completed jobs older than this")
}
