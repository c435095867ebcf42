package testutil

import (
	"database/sql"
	"testing"

	"github.com/ardi-the-water/denj/internal/db"
	"github.com/ardi-the-water/denj/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestSlots creates a SlotRepo backed by an in-memory database.
func NewTestSlots(t *testing.T) repository.SlotRepo {
	t.Helper()
	return repository.NewSQLiteSlotRepo(NewTestDB(t))
}
