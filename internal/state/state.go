// Package state persists the playlist manager to SQLite.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "setlist"
	dbFileName = "setlist.db"
)

// Store is the SQLite-backed snapshot store.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it and its directory when
// missing. An empty path selects DefaultPath.
func Open(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite has a single writer, and an in-memory database lives in one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	v, err := schemaVersion(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if v > currentSchemaVersion {
		db.Close()
		return nil, fmt.Errorf("state database schema %d is newer than supported %d", v, currentSchemaVersion)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultPath returns $XDG_DATA_HOME/setlist/setlist.db.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
