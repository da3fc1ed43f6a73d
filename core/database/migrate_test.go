package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS product").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS warehouse").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS stock").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, Migrate(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateStopsOnFirstFailure(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS product").
		WillReturnError(assert.AnError)

	assert.Error(t, Migrate(db))
}
