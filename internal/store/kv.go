package store

import (
	"database/sql"
	"errors"
)

// GetValue retrieves a value by key.
// Returns ErrNotFound if key doesn't exist.
func (s *Store) GetValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM kv WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return value, err
}

// SetValue sets a value, replacing any existing one
func (s *Store) SetValue(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// DeleteValue removes a key. Deleting a missing key is not an error.
func (s *Store) DeleteValue(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
