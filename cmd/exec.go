package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// execCmd runs a single command line without entering the shell.
var execCmd = &cobra.Command{
	Use:   "exec <command line>",
	Short: "Run one inventory command and exit",
	Long: `Runs a single command line against the inventory database, e.g.:

  inventory-manager exec 'STOCK a1b2 970 1000'
  inventory-manager exec 'LIST WAREHOUSES'`,
	Args: cobra.ExactArgs(1),
	RunE: runExec,
}

func init() {
	RootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}
	defer e.log.Sync()
	defer func() {
		if err := e.hist.Close(); err != nil {
			e.log.Warn("failed to flush command history", zap.Error(err))
		}
	}()

	return e.dispatcher.Handle(context.Background(), args[0])
}
