package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// Sentinel error kinds decided at the store boundary. Callers discriminate
// with errors.Is and must treat anything else as fatal.
var (
	// ErrDuplicateKey reports an insert that collided with an existing
	// primary key (product SKU or warehouse number).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConstraintViolation reports a stock-row insert rejected by the
	// database: either a duplicate (warehouse, SKU) pair or a foreign key
	// pointing at a missing product or warehouse.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNotFound reports a lookup or update that matched no row.
	ErrNotFound = errors.New("not found")
)

// MySQL server error numbers for the constraint classes we care about.
const (
	mysqlDupEntry     = 1062
	mysqlNoReferenced = 1452
)

// isDuplicate reports whether err is a primary-key or unique-index
// collision on the current driver.
func isDuplicate(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			se.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlDupEntry
	}
	return false
}

// isConstraint reports whether err is any constraint failure, duplicate
// keys and dangling foreign keys included.
func isConstraint(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrConstraint
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlDupEntry || me.Number == mysqlNoReferenced
	}
	return false
}
