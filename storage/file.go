// Package storage provides durable single-slot backends for a ledger
// snapshot: a plain JSON file and a SQLite table. Both satisfy the
// hisab.Storage interface.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// File persists the snapshot as a single JSON file on disk.
type File struct {
	path string
}

// NewFile returns a file-backed slot at path. The file does not need to
// exist yet; the parent directory is created on the first Save.
func NewFile(path string) *File { return &File{path: path} }

// Load reads the snapshot file. A missing file is an empty slot, not an error.
func (f *File) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

// Save writes the snapshot atomically: the data goes to a temp file in the
// same directory, then replaces the target with a rename.
func (f *File) Save(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	slog.Debug("snapshot saved", "path", f.path, "bytes", len(data))
	return nil
}
