// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store is the local state database.
//
// A single SQLite file (pure Go driver, no cgo) holds everything the
// client persists between runs: the user session, display preferences,
// and the mirrored recent-conversation ledger. Small JSON documents go
// in a key/value table; the ledger gets its own table so ordering
// survives round trips.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/darkvoid-labs/dark-tui/internal/history"
)

// Well-known keys in the kv table.
const (
	KeySession = "session"
	KeyPrefs   = "prefs"
)

// Store wraps the state database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the state database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	// SQLite writes are serialized anyway; one connection avoids lock
	// contention between the UI goroutine and background saves.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS conversations (
	position   INTEGER PRIMARY KEY,
	id         TEXT NOT NULL UNIQUE,
	title      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// =============================================================================
// KEY/VALUE DOCUMENTS
// =============================================================================

// PutJSON stores v as a JSON document under key, replacing any previous
// value.
func (s *Store) PutJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

// GetJSON loads the document under key into out. Returns false when the
// key is absent. A corrupt document is treated as absent so stale state
// can never wedge startup; the caller rewrites it on the next save.
func (s *Store) GetJSON(key string, out any) (bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, nil
	}
	return true, nil
}

// Delete removes a document. Absent keys are a no-op.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// =============================================================================
// CONVERSATION LEDGER MIRROR
// =============================================================================

// SaveRecords replaces the persisted ledger with records, preserving
// their order.
func (s *Store) SaveRecords(records []history.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM conversations`); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}
	for i, r := range records {
		_, err := tx.Exec(
			`INSERT INTO conversations (position, id, title, updated_at) VALUES (?, ?, ?, ?)`,
			i, r.ID, r.Title, r.UpdatedAt.UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("failed to store record %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// LoadRecords returns the persisted ledger in saved order.
func (s *Store) LoadRecords() ([]history.Record, error) {
	rows, err := s.db.Query(
		`SELECT id, title, updated_at FROM conversations ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	defer rows.Close()

	var records []history.Record
	for rows.Next() {
		var r history.Record
		var updated int64
		if err := rows.Scan(&r.ID, &r.Title, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.UpdatedAt = time.UnixMilli(updated)
		records = append(records, r)
	}
	return records, rows.Err()
}
