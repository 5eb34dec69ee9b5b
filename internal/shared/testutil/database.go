package testutil

import (
	"testing"

	"github.com/ecomshop/shop-api/internal/shared/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with every model migrated
// This can be reused across all integration tests
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Create in-memory SQLite database
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent), // Silent mode for tests
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every new connection would open a separate empty in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("Failed to get database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
}

// MustCreate inserts fixtures and fails the test on error
func MustCreate(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()

	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("Failed to create fixture %T: %v", v, err)
		}
	}
}
