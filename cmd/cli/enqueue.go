package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/cmd/cliutil"
	"github.com/queuectl/queuectl/job"
	"github.com/queuectl/queuectl/store"
)

var (
	enqueueJSON string
	enqueueFile string
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Add a new job to the queue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		data := []byte(enqueueJSON)
		if enqueueFile != "" {
			var err error
			data, err = os.ReadFile(enqueueFile)
			if err != nil {
				return err
			}
		}
		spec, err := job.ParseSpec(data)
		if err != nil {
			return cliutil.Exit(2, err)
		}
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		maxRetries, err := store.NewConfig(db).GetInt(ctx, queuectl.ConfigMaxRetries, queuectl.DefaultMaxRetries)
		if err != nil {
			return err
		}
		jb := spec.Job(time.Now().UTC(), maxRetries)
		if err := store.NewEnqueuer(db).Insert(ctx, jb); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Enqueued job %s\n", jb.ID)
		return nil
	},
}

func init() {
	enqueueCmd.Flags().StringVar(&enqueueJSON, "json", "", "job spec as an inline JSON string")
	enqueueCmd.Flags().StringVar(&enqueueFile, "file", "", "path to a JSON file with the job spec")
	enqueueCmd.MarkFlagsMutuallyExclusive("json", "file")
	enqueueCmd.MarkFlagsOneRequired("json", "file")
}
