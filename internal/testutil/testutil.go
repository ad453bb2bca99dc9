package testutil

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rivergarden/training-backend/internal/domain/entity"
)

var (
	dbOnce sync.Once
	dbConn *gorm.DB
	dbErr  error
)

// DB returns a database handle for integration tests, driven by the
// TEST_POSTGRES_DSN environment variable. Tests that need a database are
// skipped when it is unset, so the pure-logic suite still runs everywhere.
// The schema is auto-migrated once per process.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		tb.Skip("TEST_POSTGRES_DSN not set; skipping database test")
	}

	dbOnce.Do(func() {
		dbConn, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if dbErr != nil {
			dbErr = fmt.Errorf("connect: %w", dbErr)
			return
		}
		dbErr = dbConn.AutoMigrate(
			&entity.User{},
			&entity.Course{},
			&entity.Enrollment{},
			&entity.Certificate{},
			&entity.SupervisorAssignment{},
			&entity.Notification{},
		)
	})
	if dbErr != nil {
		tb.Fatalf("test database setup failed: %v", dbErr)
	}

	return dbConn
}

// Tx opens a transaction that is rolled back when the test finishes, keeping
// tests isolated without truncating tables.
func Tx(tb testing.TB) *gorm.DB {
	tb.Helper()

	tx := DB(tb).Begin()
	if tx.Error != nil {
		tb.Fatalf("begin transaction: %v", tx.Error)
	}
	tb.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}
