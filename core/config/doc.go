// Package config provides configuration management for the inventory manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Database: driver and connection details (SQLite file or MySQL)
//   - History: command-history log file and batch size
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials and bucket for backups
//
// Defaults come from `default` struct tags on each partial Config; any value
// can be overridden through the environment, e.g. DATABASE_PATH or LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Path)
package config
