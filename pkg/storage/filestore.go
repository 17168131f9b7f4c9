// Package storage provides the on-device persistence adapter for the
// entity store. Snapshots are whole-collection JSON documents keyed by
// logical collection name; there are no partial or field-level writes.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Logical collection keys used by the entity store.
const (
	KeyJobs     = "jobs"
	KeyResume   = "resume"
	KeySettings = "settings"
)

// Adapter reads and writes whole-entity snapshots keyed by collection
// name. Load reports false when no snapshot exists for the key.
type Adapter interface {
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
}

// FileStore implements Adapter using one JSON file per key in a local
// directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-backed adapter rooted at dir. If dir is
// empty it defaults to ~/.jobflow/data. The directory is created on
// first use.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".jobflow", "data")
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) pathFor(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the snapshot stored under key into v. It returns false with
// a nil error when no snapshot exists, and an error when the snapshot
// cannot be read or decoded.
func (s *FileStore) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %q: %w", key, err)
	}

	return true, nil
}

// Save writes v as the snapshot for key. The write is atomic: data is
// written to a temp file and renamed into place, so a crash mid-write
// never leaves a truncated snapshot behind.
func (s *FileStore) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", key, err)
	}

	path := s.pathFor(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp snapshot %q: %w", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename temp snapshot %q: %w", key, err)
	}

	return nil
}
