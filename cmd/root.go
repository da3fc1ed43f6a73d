package cmd

import (
	"fmt"
	"os"

	"inventory-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventory-manager",
	Short: "Inventory Manager",
	Long: `Inventory Manager maintains a product catalog, warehouses with optional
stock limits, and per-warehouse stock levels, driven by line-oriented text
commands (ADD PRODUCT, ADD WAREHOUSE, STOCK, UNSTOCK, LIST).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with "debug" level gives readable ISO8601 output
		// for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
