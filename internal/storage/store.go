// Package storage persists the portfolio as a single JSON document on disk.
// The store is deliberately forgiving on read: a missing or corrupt file
// means "no data yet", never an error surfaced to the caller.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
)

// Payload is the persisted document shape.
type Payload struct {
	Funds []model.Fund `json:"funds"`
}

// FileStore reads and writes the portfolio JSON document at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the given data file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the data file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the portfolio document. A missing file is created empty; a file
// that fails to parse is treated as an empty portfolio. Corruption is logged
// but never propagated.
func (s *FileStore) Load() (Payload, error) {
	if err := s.ensureDataFile(); err != nil {
		return Payload{Funds: []model.Fund{}}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Payload{Funds: []model.Fund{}}, fmt.Errorf("failed to read data file: %w", err)
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("Data file %s is not valid JSON, starting with an empty portfolio: %v", s.path, err)
		return Payload{Funds: []model.Fund{}}, nil
	}
	if payload.Funds == nil {
		payload.Funds = []model.Fund{}
	}
	return payload, nil
}

// Save serializes the portfolio document. Each fund's entries are expected
// to be sorted by month before the call. The document is written to a
// temporary file in the same directory and renamed over the destination, so
// a concurrent reader never observes a half-written file.
func (s *FileStore) Save(payload Payload) error {
	if payload.Funds == nil {
		payload.Funds = []model.Fund{}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close data file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// CreateBackup copies the current data file to a timestamped sibling and
// returns the backup path.
func (s *FileStore) CreateBackup() (string, error) {
	if err := s.ensureDataFile(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read data file for backup: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	base := filepath.Base(s.path)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	backupPath := filepath.Join(filepath.Dir(s.path), fmt.Sprintf("%s_backup_%s%s", name, timestamp, ext))

	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return backupPath, nil
}

// LastModified returns the data file's mtime, or the zero time when the
// file does not exist yet.
func (s *FileStore) LastModified() time.Time {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (s *FileStore) ensureDataFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat data file: %w", err)
	}
	return s.Save(Payload{Funds: []model.Fund{}})
}
