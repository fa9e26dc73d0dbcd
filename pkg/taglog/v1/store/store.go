// Package store defines the persisted key/value settings interface used to
// remember severity thresholds across process restarts.
package store

// Store is the minimal contract against a persisted settings backend.
// Thresholds are stored and retrieved as integer severity ranks under a
// stable key derived from the owning logger's identity tag.
//
// Implementations must be safe for concurrent use; they are shared
// infrastructure even when individual loggers are single-owner.
type Store interface {
	// GetInt returns the value stored under key, or def when the key has
	// never been set. Backend failures are the store's concern: an
	// implementation that cannot read reports def, and the caller treats
	// that as authoritative.
	GetInt(key string, def int) int

	// SetInt writes the value under key, overwriting any previous value.
	// Writes take effect for the next GetInt; no caching layer sits between.
	SetInt(key string, value int) error

	// Close releases any resources held by the backend. A no-op for
	// volatile stores.
	Close() error
}
