// internal/progress/store.go
package progress

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"pixel-survivor/internal/config"
)

// Store reads and writes the save record on an afero filesystem.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore keeps the record in dir under the fixed storage key.
func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, path: filepath.Join(dir, config.StorageKey+".json")}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved progress. A missing, unreadable or invalid record
// yields a fresh default; the problem is logged, never returned.
func (s *Store) Load() *GameProgress {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Failed to read progress, starting fresh", "path", s.path, "error", err)
		}
		return Default()
	}

	p, err := Decode(data)
	if err != nil {
		slog.Warn("Discarding malformed progress", "path", s.path, "error", err)
		return Default()
	}
	return p
}

// WriteRaw replaces the record with already encoded data. The file is written
// next to the target and renamed over it.
func (s *Store) WriteRaw(data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace progress: %w", err)
	}
	return nil
}

// Reset deletes the saved record.
func (s *Store) Reset() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return nil
}
