package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tunetutor/internal/shared"
)

// Persisted state keys. The three session slices live under their own keys so
// corruption in one never takes down the others.
const (
	KeyProgress = "tunetutorProgress"
	KeyLessons  = "tunetutorLessons"
	KeyScore    = "tunetutorScore"
	KeyTheme    = "theme"
)

// StateRepository is a key/value store over the app_state table.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new [StateRepository] with the given database connection
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves the value stored under key. Returns [shared.ErrStateNotFound]
// when no row exists.
func (r *StateRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", shared.ErrStateNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query state key %s: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, inserting or replacing as needed.
func (r *StateRepository) Set(key, value string) error {
	query := `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set state key %s: %w", key, err)
	}

	return nil
}

// Delete removes the row stored under key. Deleting an absent key is not an error.
func (r *StateRepository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM app_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete state key %s: %w", key, err)
	}

	return nil
}
