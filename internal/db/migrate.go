package db

import (
	"database/sql"
	"fmt"
)

// Each entity class owns a single logical slot holding its full JSON
// value; every write is a whole-value overwrite.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS slots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
