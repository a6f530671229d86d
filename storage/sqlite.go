package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite persists the snapshot as one row of a snapshots table, keyed by a
// caller-chosen slot name. Several independent ledgers can share one
// database file under different slots.
type SQLite struct {
	db   *sql.DB
	slot string
}

// NewSQLite opens (creating if needed) the database at dbPath, runs the
// schema migrations and binds to the given slot.
func NewSQLite(dbPath, slot string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db, slot: slot}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the snapshot for the bound slot. An absent row is an empty
// slot, not an error.
func (s *SQLite) Load() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE slot = ?`, s.slot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", s.slot, err)
	}
	return data, nil
}

// Save upserts the snapshot for the bound slot.
func (s *SQLite) Save(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (slot, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.slot, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", s.slot, err)
	}

	slog.Debug("snapshot saved", "slot", s.slot, "bytes", len(data))
	return nil
}
