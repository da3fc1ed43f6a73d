package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/history"
	"inventory-manager/core/logger"
	"inventory-manager/core/render"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shellCmd runs the interactive command prompt.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive inventory shell",
	Long: `Starts the interactive prompt loop. Commands are read one line at a
time from standard input until end-of-input:

    ADD PRODUCT "PRODUCT NAME" SKU
    ADD WAREHOUSE WAREHOUSE# [STOCK_LIMIT]
    STOCK SKU WAREHOUSE# QTY
    UNSTOCK SKU WAREHOUSE# QTY
    LIST PRODUCTS
    LIST WAREHOUSES
    LIST WAREHOUSE WAREHOUSE#`,
	RunE: runShell,
}

func init() {
	RootCmd.AddCommand(shellCmd)
}

// env bundles the wiring shared by the shell and exec commands.
type env struct {
	log        *zap.Logger
	dispatcher *inventory.Dispatcher
	hist       *history.Writer
}

// buildEnv loads configuration and wires logger, database, store, history
// and dispatcher together.
func buildEnv() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())
	zap.ReplaceGlobals(l)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	l.Debug("connected to inventory database",
		zap.String("driver", cfg.Database.Driver), zap.String("path", cfg.Database.Path))

	hist := history.New(cfg.History)
	svc := inventory.NewService(store.New(db), l)
	dispatcher := inventory.NewDispatcher(svc, render.New(os.Stdout), hist, l)

	return &env{log: l, dispatcher: dispatcher, hist: hist}, nil
}

func runShell(cmd *cobra.Command, args []string) error {
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

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		if err := e.dispatcher.Handle(ctx, scanner.Text()); err != nil {
			// Unclassified storage failure: fail fast rather than keep
			// accepting commands against a broken store.
			return err
		}
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Println("Have a great day!")
	return nil
}
