package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/cmd/cliutil"
	"github.com/queuectl/queuectl/store"
)

var rootCmd = &cobra.Command{
	Use:   "queuectl",
	Short: "CLI background job queue",
	Long: `queuectl is a persistent background job queue for shell commands.

Jobs are stored in an embedded SQLite database and executed by worker
processes with exponential backoff retries and a dead letter queue.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return cliutil.Code(err)
	}
	return 0
}

func init() {
	cobra.OnInitialize(initLogging)

	cwd := lo.Must(os.Getwd())
	pf := rootCmd.PersistentFlags()

	pf.String("db", filepath.Join(cwd, "queuectl.db"), "path to the sqlite store")
	cobra.CheckErr(viper.BindPFlag("db", pf.Lookup("db")))
	cobra.CheckErr(viper.BindEnv("db", "QUEUECTL_DB"))

	pf.String("state-dir", filepath.Join(cwd, ".queuectl"), "state directory for pid and log files")
	cobra.CheckErr(viper.BindPFlag("state_dir", pf.Lookup("state-dir")))
	cobra.CheckErr(viper.BindEnv("state_dir", "QUEUECTL_STATE"))

	pf.String("log-level", "info", "logging level (debug, info, warn, error)")
	cobra.CheckErr(viper.BindPFlag("log_level", pf.Lookup("log-level")))
	cobra.CheckErr(viper.BindEnv("log_level", "QUEUECTL_LOG_LEVEL"))

	rootCmd.AddCommand(enqueueCmd)
	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dlqCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cleanCmd)
}

// openStore opens the configured database and makes sure the schema and
// default config rows exist.
func openStore(ctx context.Context) (*bun.DB, error) {
	db, err := store.Open(viper.GetString("db"))
	if err != nil {
		return nil, err
	}
	if err := store.InitDB(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func stateDirs() queuectl.StateDirs {
	return queuectl.NewStateDirs(viper.GetString("state_dir"))
}
