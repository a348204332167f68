// Package sqlite implements the file-metadata store on an embedded
// file-backed SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"tgstash/internal/errors"
)

type Storage struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and bootstraps the
// schema. Uniqueness of (user_id, file_name) and of file_unique_id is
// enforced here, not by pre-insert lookups in callers.
func New(dbPath string) (*Storage, error) {
	db, err := Connect(dbPath)
	if err != nil {
		return nil, err
	}

	storage := &Storage{db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("database initialized", "path", dbPath)
	return storage, nil
}

func Connect(dbPath string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY between pool connections under concurrent updates.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		file_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		mime_type TEXT NOT NULL DEFAULT 'Unknown',
		upload_date TIMESTAMP NOT NULL,
		file_unique_id TEXT UNIQUE,
		UNIQUE (user_id, file_name)
	)`)
	if err != nil {
		return &errors.StorageError{Op: "init schema", Err: err}
	}

	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_user_id ON files(user_id)`)
	if err != nil {
		return &errors.StorageError{Op: "init schema", Err: err}
	}

	return nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable. Used by the readiness
// probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
