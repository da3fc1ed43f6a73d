// Package database handles database connections and schema bootstrap.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures the connection for the inventory store: SQLite by default
// (a local single-user file, opened with foreign keys enforced), MySQL as
// an alternative for shared setups.
//
// # Connect
//
// Connect opens and pings the configured database. The connection is held
// for the life of the process and closed on shutdown.
//
// # Migrate
//
// Migrate creates the product, warehouse and stock tables idempotently at
// startup, so a fresh database file works without any manual setup.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	if err := database.Migrate(db); err != nil { ... }
package database
