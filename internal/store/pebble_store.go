package store

import (
	"errors"
	"strconv"

	"github.com/cockroachdb/pebble"

	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
	taglogstore "github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

// PebbleStore implements the store interface on a Pebble key/value
// database. Writes are WAL-synced so a stored threshold survives an
// unclean process exit. Pebble serializes its own access; no additional
// locking is needed here.
type PebbleStore struct {
	inner *pebble.DB
}

// OpenPebbleStore creates or opens the Pebble database at dir.
func OpenPebbleStore(dir string) (*PebbleStore, error) {
	if dir == "" {
		return nil, taglogerrors.NewConfigError("pebble store directory cannot be empty", nil)
	}
	inner, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, taglogerrors.NewStoreError("pebble", "open", err)
	}
	return &PebbleStore{inner: inner}, nil
}

// GetInt returns the stored value, or def when the key is absent or the
// stored bytes do not parse as an integer.
func (s *PebbleStore) GetInt(key string, def int) int {
	val, closer, err := s.inner.Get([]byte(key))
	if err != nil {
		// ErrNotFound and read failures both fall back to the default;
		// the caller treats the default as authoritative.
		return def
	}
	defer closer.Close()
	v, convErr := strconv.Atoi(string(val))
	if convErr != nil {
		return def
	}
	return v
}

// SetInt stores the value under key with a synced write.
func (s *PebbleStore) SetInt(key string, value int) error {
	if err := s.inner.Set([]byte(key), []byte(strconv.Itoa(value)), pebble.Sync); err != nil {
		return taglogerrors.NewStoreError("pebble", "set", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *PebbleStore) Close() error {
	if s == nil || s.inner == nil {
		return nil
	}
	if err := s.inner.Close(); err != nil && !errors.Is(err, pebble.ErrClosed) {
		return taglogerrors.NewStoreError("pebble", "close", err)
	}
	return nil
}

var _ taglogstore.Store = (*PebbleStore)(nil)
