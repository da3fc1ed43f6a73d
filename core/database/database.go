package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a database connection according to the configured
// driver. SQLite is the default for the single-user command shell; MySQL is
// supported for shared setups.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	// Every command is a single statement, so gorm's default per-write
	// transaction only adds round trips.
	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(mysqlDSN(cfg, timeout)), gormConfig)
	case "", "sqlite":
		// Foreign keys are off by default in SQLite; the stock table's
		// product check depends on them.
		dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=%d", cfg.Path, timeout*1000)
		db, err = gorm.Open(sqlite.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Single sequential user, but keep sane pool bounds for the mysql case.
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// mysqlDSN builds the go-sql-driver DSN. Special characters in the password
// must be URL encoded. clientFoundRows makes UPDATE report matched rows
// instead of changed rows; a rewrite to the same quantity must not look like
// a missing row.
func mysqlDSN(cfg Config, timeout int) string {
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
}
