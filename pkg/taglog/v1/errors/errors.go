package errors

import (
	"fmt"
)

// --- taglog Core Error Types ---

// ConfigError represents an error encountered while assembling a logger or
// loading the settings configuration (nil collaborator, bad backend, etc.).
type ConfigError struct {
	Message string
	Cause   error
}

func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{Message: message, Cause: cause}
}
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}
func (e *ConfigError) Unwrap() error { return e.Cause }

// ValidationError indicates that a settings document failed structural or
// schema validation checks.
type ValidationError struct {
	Message string
	Cause   error
}

func NewValidationError(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
func (e *ValidationError) Unwrap() error { return e.Cause }

// StoreError wraps a failure reported by a persisted settings backend.
// The logging core itself never surfaces these; they are returned by store
// constructors and write paths for callers that care.
type StoreError struct {
	Backend string
	Op      string
	Cause   error
}

func NewStoreError(backend, op string, cause error) *StoreError {
	return &StoreError{Backend: backend, Op: op, Cause: cause}
}
func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s %s): %v", e.Backend, e.Op, e.Cause)
}
func (e *StoreError) Unwrap() error { return e.Cause }
