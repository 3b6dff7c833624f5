package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteSlot stores the value as a single row in a slots table, keyed by the
// slot name. Each save replaces the whole value in one statement.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// OpenSQLiteSlot opens (creating if needed) the database at path and returns
// the slot with the given name.
func OpenSQLiteSlot(path, name string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS slots (
		name  TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &SQLiteSlot{db: db, name: name}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}

// Load reads the stored value. A missing row means nothing has been stored.
func (s *SQLiteSlot) Load() ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE name = ?`, s.name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.name, err)
	}
	return value, nil
}

// Save overwrites the stored value.
func (s *SQLiteSlot) Save(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		s.name, data,
	)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", s.name, err)
	}
	return nil
}
