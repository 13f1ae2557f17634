// internal/store/sqlite.go
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore persists lightweight user state (bookmarks, last practice
// position) across process restarts. It is the Go-side stand-in for
// browser local storage: a single writer, read at startup.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// get returns the raw value for a key, or ErrNotFound.
func (s *SQLiteStore) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM user_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// set upserts a key.
func (s *SQLiteStore) set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO user_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// ============================================================================
// Bookmarks
// ============================================================================

// LoadBookmarks reads the persisted bookmark set. An absent key is an
// empty set; a malformed payload is reported as an error so the caller
// can fall back to empty rather than crash.
func (s *SQLiteStore) LoadBookmarks() ([]int, error) {
	raw, err := s.get(KeyBookmarks)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("malformed bookmark payload: %w", err)
	}
	return ids, nil
}

// SaveBookmarks writes the full bookmark set as a JSON array.
func (s *SQLiteStore) SaveBookmarks(ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.set(KeyBookmarks, string(payload))
}

// ============================================================================
// Practice position
// ============================================================================

// PracticeIndex returns the last visited index in plain practice mode.
// ErrNotFound means no position has been saved yet; a non-numeric value
// is treated the same way.
func (s *SQLiteStore) PracticeIndex() (int, error) {
	raw, err := s.get(KeyPracticeIndex)
	if err != nil {
		return 0, err
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotFound
	}
	return index, nil
}

// SavePracticeIndex persists the current practice position.
func (s *SQLiteStore) SavePracticeIndex(index int) error {
	return s.set(KeyPracticeIndex, strconv.Itoa(index))
}
