package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
	taglogstore "github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

// FileStore implements the store interface on a YAML settings file holding
// a flat key-to-integer map. The file is read once at open; every write
// rewrites it through a temporary file and rename so a crash mid-write
// never leaves a truncated settings file behind.
type FileStore struct {
	path string

	mu   sync.RWMutex
	data map[string]int
}

// OpenFileStore opens or creates the YAML settings file at path.
func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, taglogerrors.NewConfigError("file store path cannot be empty", nil)
	}
	s := &FileStore{path: path, data: make(map[string]int)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, taglogerrors.NewStoreError("file", "open", err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, taglogerrors.NewStoreError("file", "open",
			fmt.Errorf("settings file %q is not a flat key/int map: %w", path, err))
	}
	if s.data == nil {
		s.data = make(map[string]int)
	}
	return s, nil
}

// GetInt returns the stored value, or def when the key was never set.
func (s *FileStore) GetInt(key string, def int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.data[key]; ok {
		return v
	}
	return def
}

// SetInt stores the value and rewrites the settings file.
func (s *FileStore) SetInt(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flushLocked()
}

// Close is a no-op; every write already reaches the file.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) flushLocked() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return taglogerrors.NewStoreError("file", "write", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return taglogerrors.NewStoreError("file", "write", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return taglogerrors.NewStoreError("file", "write", err)
	}
	return nil
}

var _ taglogstore.Store = (*FileStore)(nil)
