package testutil

import (
	"testing"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
// This can be reused across all integration tests
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent mode for tests
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every connection to :memory: opens a fresh database, so keep exactly one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
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

// SeedMember inserts a member directly, bypassing the service layer
func SeedMember(t *testing.T, db *gorm.DB, firstName, lastName, email string) *model.Member {
	t.Helper()

	member := model.NewMember(firstName, lastName, email)
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("Failed to seed member: %v", err)
	}
	return member
}

// SeedItem inserts a catalog item directly, bypassing the service layer
func SeedItem(t *testing.T, db *gorm.DB, mediaType model.MediaType, name, creator string, available bool) model.Item {
	t.Helper()

	item, ok := model.NewItem(mediaType, name, creator, available)
	if !ok {
		t.Fatalf("Unknown media type %q", mediaType)
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to seed %s: %v", mediaType, err)
	}
	return item
}

// SeedLoan inserts an open loan directly, bypassing the eligibility rules.
// The item is marked unavailable like a regular borrow would.
func SeedLoan(t *testing.T, db *gorm.DB, memberID uint32, item model.Item, loanDate time.Time) *model.Loan {
	t.Helper()

	item.TryBorrow()
	if err := db.Model(item).Update("available", item.IsAvailable()).Error; err != nil {
		t.Fatalf("Failed to mark item unavailable: %v", err)
	}

	loan := model.NewLoan(memberID, model.RefOf(item), loanDate, model.DefaultLoanPeriodDays)
	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("Failed to seed loan: %v", err)
	}
	return loan
}
