package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Schema bootstrap, run once at startup. The DDL is kept literal rather
// than generated so the on-disk schema stays exactly what the commands
// were written against.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS product(
		SKU VARCHAR(50) PRIMARY KEY,
		product_name VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS warehouse(
		warehouse_num INTEGER PRIMARY KEY,
		limit_qty INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS stock(
		warehouse_num INTEGER,
		SKU VARCHAR(50),
		qty INTEGER NOT NULL,
		PRIMARY KEY (warehouse_num, SKU),
		FOREIGN KEY (warehouse_num) REFERENCES warehouse(warehouse_num),
		FOREIGN KEY (SKU) REFERENCES product(SKU)
	)`,
}

// Migrate creates the product, warehouse and stock tables if they do not
// exist yet. It is idempotent.
func Migrate(db *gorm.DB) error {
	for _, ddl := range schema {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
