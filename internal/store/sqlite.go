package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the current constants-catalog schema version.
const SchemaVersion = "1"

// SQLite is a SQLite-backed constants store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens (creating if needed) a SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS constants (
			key   TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			value REAL NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	version, err := s.getMetadata("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err := s.setMetadata("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("store: unsupported schema version %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

func (s *SQLite) getMetadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLite) setMetadata(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// List returns all constants ordered by key.
func (s *SQLite) List() ([]Constant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT key, label, value FROM constants ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Constant
	for rows.Next() {
		var c Constant
		if err := rows.Scan(&c.Key, &c.Label, &c.Value); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get retrieves a constant by key.
func (s *SQLite) Get(key string) (*Constant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var c Constant
	err := s.db.QueryRow(`SELECT key, label, value FROM constants WHERE key = ?`, key).
		Scan(&c.Key, &c.Label, &c.Value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Put stores a constant, overwriting any existing entry for its key.
func (s *SQLite) Put(c Constant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`
		INSERT INTO constants (key, label, value) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET label = excluded.label, value = excluded.value
	`, c.Key, c.Label, c.Value)
	return err
}

// Delete removes a constant by key.
func (s *SQLite) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM constants WHERE key = ?`, key)
	return err
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
