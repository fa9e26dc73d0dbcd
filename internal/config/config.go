// Package config loads and validates taglog settings files: the sink setup,
// the persisted threshold store backend, and the set of configured loggers.
package config

import (
	"github.com/taglog-labs/taglog/internal/store"
	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
	taglogstore "github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

// Store backend names accepted in settings files.
const (
	BackendMemory = "memory"
	BackendEnv    = "env"
	BackendFile   = "file"
	BackendPebble = "pebble"
)

// Settings represents the top-level structure of a taglog settings YAML file.
type Settings struct {
	SchemaVersion string          `yaml:"schemaVersion"`
	Sink          SinkSettings    `yaml:"sink,omitempty"`
	Store         StoreSettings   `yaml:"store,omitempty"`
	Loggers       []LoggerEntry   `yaml:"loggers,omitempty"`

	// FilePath stores the source path for context in error messages.
	// It is not parsed from the YAML.
	FilePath string `yaml:"-"`
}

// SinkSettings configures the default slog sink.
type SinkSettings struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// StoreSettings selects the persisted threshold backend.
type StoreSettings struct {
	Backend string `yaml:"backend,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// LoggerEntry declares one configured logger identity.
type LoggerEntry struct {
	Tag          string `yaml:"tag"`
	DefaultLevel string `yaml:"defaultLevel,omitempty"`
	Enabled      *bool  `yaml:"enabled,omitempty"`
}

// SinkLevel returns the configured sink severity, defaulting to Verbose so
// the facade's gate, not the sink, governs filtering.
func (s *SinkSettings) SinkLevel() severity.Severity {
	if s.Level == "" {
		return severity.Verbose
	}
	sev, ok := severity.Parse(s.Level)
	if !ok {
		return severity.Verbose
	}
	return sev
}

// DefaultThreshold returns the entry's default severity threshold,
// defaulting to Error.
func (e *LoggerEntry) DefaultThreshold() severity.Severity {
	if e.DefaultLevel == "" {
		return severity.Error
	}
	sev, ok := severity.Parse(e.DefaultLevel)
	if !ok {
		return severity.Error
	}
	return sev
}

// IsEnabled returns the entry's enabled flag, defaulting to true.
func (e *LoggerEntry) IsEnabled() bool {
	if e.Enabled == nil {
		return true
	}
	return *e.Enabled
}

// OpenStore opens the threshold store backend selected by the settings.
// The memory backend is the default when none is configured.
func (s *StoreSettings) OpenStore() (taglogstore.Store, error) {
	switch s.Backend {
	case "", BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendEnv:
		return store.NewEnvStore(), nil
	case BackendFile:
		return store.OpenFileStore(s.Path)
	case BackendPebble:
		return store.OpenPebbleStore(s.Path)
	default:
		return nil, taglogerrors.NewConfigError("unknown store backend '"+s.Backend+"'", nil)
	}
}
