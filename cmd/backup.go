package cmd

import (
	"context"
	"fmt"
	"time"

	"inventory-manager/core/config"
	"inventory-manager/core/logger"
	"inventory-manager/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backupCmd uploads a snapshot of the database file to object storage.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload a snapshot of the inventory database to object storage",
	Long: `Uploads the SQLite database file to the configured S3/MinIO bucket
under a timestamped object name. Only meaningful with the sqlite driver.`,
	RunE: runBackup,
}

func init() {
	RootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if cfg.Database.Driver != "" && cfg.Database.Driver != "sqlite" {
		return fmt.Errorf("backup requires the sqlite driver, configured driver is %q", cfg.Database.Driver)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	timeout := cfg.Storage.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	object, err := storage.Backup(ctx, client, cfg.Storage, cfg.Database.Path, time.Now())
	if err != nil {
		return err
	}

	l.Info("backup uploaded",
		zap.String("bucket", cfg.Storage.Bucket), zap.String("object", object))
	return nil
}
