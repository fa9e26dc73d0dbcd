// Package severity defines the ordered severity categories used by taglog.
package severity

import "strings"

// Severity is the importance category of a log call. Severities are totally
// ordered by integer rank, most severe first: a smaller rank means a more
// severe event. The rank is also the representation persisted in threshold
// stores, so the numeric values are part of the stable contract.
type Severity int

const (
	// Error indicates a failure that prevented an operation from completing.
	Error Severity = iota
	// Assert indicates a violated internal assumption.
	Assert
	// Warning indicates something unexpected that did not stop the operation.
	Warning
	// Log is the ordinary informational severity.
	Log
	// Verbose is the most detailed, least severe category.
	Verbose
	// Exception is a distinguished category for reported exceptions. It is
	// treated as always-significant and bypasses threshold comparison.
	Exception
)

// String returns the canonical uppercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Assert:
		return "ASSERT"
	case Warning:
		return "WARNING"
	case Log:
		return "LOG"
	case Verbose:
		return "VERBOSE"
	case Exception:
		return "EXCEPTION"
	default:
		return "UNKNOWN"
	}
}

// Rank returns the integer rank of the severity. Exposed separately from the
// raw value so callers that persist thresholds do not depend on the type.
func (s Severity) Rank() int { return int(s) }

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool { return s >= Error && s <= Exception }

// Parse converts a severity name (case-insensitive, with common aliases) to
// a Severity. The boolean is false when the name is unknown, in which case
// Error is returned as a safe default.
func Parse(name string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ERROR":
		return Error, true
	case "ASSERT":
		return Assert, true
	case "WARN", "WARNING":
		return Warning, true
	case "LOG", "INFO":
		return Log, true
	case "VERBOSE", "DEBUG":
		return Verbose, true
	case "EXCEPTION":
		return Exception, true
	default:
		return Error, false
	}
}

// FromRank converts a persisted integer rank back to a Severity. Ranks
// outside the defined range clamp to the nearest valid severity, so a
// corrupted store entry degrades to a sane threshold instead of failing.
func FromRank(rank int) Severity {
	if rank < int(Error) {
		return Error
	}
	if rank > int(Exception) {
		return Exception
	}
	return Severity(rank)
}
