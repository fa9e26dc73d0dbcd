package store

import (
	"os"
	"strconv"
	"strings"

	taglogstore "github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

// EnvStore implements the store interface against process environment
// variables. Store keys are mangled to environment style: uppercased, with
// every non-alphanumeric rune replaced by an underscore, so the key
// "taglog.threshold.Main" reads TAGLOG_THRESHOLD_MAIN.
//
// Writes call os.Setenv and therefore persist only for the lifetime of the
// process; the backend exists for deployments that configure thresholds
// through the environment.
type EnvStore struct{}

// NewEnvStore creates a new environment-variable store.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// GetInt reads the mangled environment variable, returning def when the
// variable is unset or not an integer.
func (s *EnvStore) GetInt(key string, def int) int {
	raw, found := os.LookupEnv(EnvKey(key))
	if !found {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

// SetInt writes the mangled environment variable.
func (s *EnvStore) SetInt(key string, value int) error {
	return os.Setenv(EnvKey(key), strconv.Itoa(value))
}

// Close is a no-op for the environment store.
func (s *EnvStore) Close() error { return nil }

// EnvKey converts a store key to its environment-variable form.
func EnvKey(key string) string {
	mangled := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, key)
	return strings.ToUpper(mangled)
}

var _ taglogstore.Store = (*EnvStore)(nil)
