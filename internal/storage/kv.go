package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/lights-arcade/internal/games/lightsout"
)

// GetBlob returns the value stored under key. found is false when the key
// has no value.
func (s *Store) GetBlob(key string) (value string, found bool, err error) {
	err = s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// SetBlob stores value under key, replacing any previous value.
func (s *Store) SetBlob(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// DeleteBlob removes key. Deleting a missing key is not an error.
func (s *Store) DeleteBlob(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys starting with prefix, sorted.
func (s *Store) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT key FROM kv WHERE substr(key, 1, length(?)) = ? ORDER BY key",
		prefix, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return keys, nil
}

// LoadScore implements lightsout.ScoreStore.
// A value that is not a valid record is reported as an error.
func (s *Store) LoadScore(key string) (lightsout.ScoreRecord, bool, error) {
	var rec lightsout.ScoreRecord

	raw, found, err := s.GetBlob(key)
	if err != nil || !found {
		return rec, false, err
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return lightsout.ScoreRecord{}, false, fmt.Errorf("storage: corrupt score record %s: %w", key, err)
	}
	return rec, true, nil
}

// SaveScore implements lightsout.ScoreStore.
func (s *Store) SaveScore(key string, rec lightsout.ScoreRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage: cannot encode score record %s: %w", key, err)
	}
	return s.SetBlob(key, string(data))
}

// ResetScores deletes the best records whose keys start with prefix and
// returns how many were removed. Clear history is left alone.
func (s *Store) ResetScores(prefix string) (int, error) {
	keys, err := s.Keys(prefix)
	if err != nil {
		return 0, err
	}
	for i, k := range keys {
		if err := s.DeleteBlob(k); err != nil {
			return i, err
		}
	}
	return len(keys), nil
}

// Ensure Store implements ScoreStore
var _ lightsout.ScoreStore = (*Store)(nil)
