package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens a SQLite database at the given path. Activity snapshots are
// only ever read, so readOnly should be true outside of fixtures; a
// read-only open fails when the file does not exist.
// If path is ":memory:", uses an in-memory database.
func OpenDB(path string, readOnly bool) (*sql.DB, error) {
	dsn := path
	switch {
	case path == ":memory:":
	case readOnly:
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		dsn = "file:" + path + "?mode=ro"
	default:
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}
