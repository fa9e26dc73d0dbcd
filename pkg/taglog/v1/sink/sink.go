// Package sink defines the public interface for log sinks consumed by taglog.
package sink

import (
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
)

// Sink is the external destination that renders accepted log calls.
// Implementations receive the raw format template and its arguments rather
// than a pre-concatenated string, preserving their own formatting and
// argument-capture semantics. The context parameter is an opaque, optional
// reference to an object of interest for the host environment; sinks must
// pass it through or ignore it, never interpret it.
//
// Sinks may apply their own additional filtering; taglog's gate decides only
// whether the call reaches the sink at all.
type Sink interface {
	// Emit renders a severity-tagged message. args are the values for the
	// fmt-style format template.
	Emit(sev severity.Severity, context any, format string, args ...any)

	// EmitException reports an exception through the sink's dedicated
	// exception entry point, outside the normal message path.
	EmitException(err error, context any)
}
