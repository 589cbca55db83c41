// Package storage handles access to the portfolio data file on disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataFile wraps the single source file the portfolio is persisted to.
type DataFile struct {
	path string
}

// NewDataFile creates a DataFile for the given path. The file itself may not
// exist yet; the parent directory is created on first write.
func NewDataFile(path string) (*DataFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}
	return &DataFile{path: abs}, nil
}

// Path returns the absolute path of the data file.
func (f *DataFile) Path() string {
	return f.path
}

// Exists reports whether the data file is present on disk.
func (f *DataFile) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

// Read returns the raw bytes of the data file.
func (f *DataFile) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	return data, nil
}

// Write atomically overwrites the data file: tmp file → fsync → rename.
func (f *DataFile) Write(content []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".folio-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
