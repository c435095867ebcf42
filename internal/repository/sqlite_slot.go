package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteSlotRepo implements SlotRepo using a SQLite database.
type SQLiteSlotRepo struct {
	db *sql.DB
}

// NewSQLiteSlotRepo creates a new SQLiteSlotRepo.
func NewSQLiteSlotRepo(db *sql.DB) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: db}
}

func (r *SQLiteSlotRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteSlotRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteSlotRepo) Clear(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clearing slot %s: %w", key, err)
	}
	return nil
}
