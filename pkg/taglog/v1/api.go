package v1

import (
	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/sink"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

// Scope is a releasable handle for a nested tag scope. Release pops exactly
// the tag the scope pushed and is idempotent; releasing twice never pops an
// unrelated tag. Scopes for the same logger must be released in reverse
// order of acquisition. The intended usage guarantees release on every exit
// path:
//
//	defer log.OpenScope("load").Release()
type Scope interface {
	Release()
}

// LoggerV1 defines the public interface of a taglog logger. A logger owns a
// severity gate and a stack of nested scope tags, and forwards accepted
// calls to an external sink. Calls to a given logger are expected to
// originate from one logical execution context at a time; no internal
// locking is provided.
type LoggerV1 interface {
	// LogSeverity is the single path every logging call reduces to. tag is
	// an optional explicit per-call tag ("" for none); context is an opaque
	// optional reference passed through to the sink unchanged (nil for
	// none). Rejected calls are side-effect-free.
	LogSeverity(sev severity.Severity, tag string, message any, context any)

	// Convenience family. Each reduces to LogSeverity.
	Log(message any)
	LogTagged(tag string, message any)
	LogWarning(message any)
	LogWarningTagged(tag string, message any)
	LogError(message any)
	LogErrorTagged(tag string, message any)
	LogVerbose(message any)

	// LogException reports an exception. It bypasses severity gating
	// entirely; only the global enabled flag applies.
	LogException(err error)
	LogExceptionContext(err error, context any)

	// Logf forwards a caller-managed format template and args unchanged to
	// the sink (no tag injected), gated identically to Log.
	Logf(sev severity.Severity, format string, args ...any)
	LogfContext(sev severity.Severity, context any, format string, args ...any)

	// Manual scope management. PushTag with an empty tag and PopTag on an
	// empty stack are silent no-ops.
	PushTag(tag string)
	PopTag()
	OpenScope(tag string) Scope

	// IsAllowed reports whether a call at sev would currently pass the gate.
	IsAllowed(sev severity.Severity) bool

	// Enabled is the global kill switch; it defaults to true.
	Enabled() bool
	SetEnabled(enabled bool)

	// Threshold reads through to the persisted store; SetThreshold writes
	// through immediately so external editors observe the change on their
	// next read.
	Threshold() severity.Severity
	SetThreshold(sev severity.Severity)

	// MainTag is the logger's identity tag. SetMainTag re-establishes the
	// identity after reconfiguration: the derived store key and composed
	// tag base are recomputed before any further log call. Already-pushed
	// scope entries are not cleared; clearing stale scopes is a caller
	// responsibility.
	MainTag() string
	SetMainTag(tag string)

	// ComposedTag is the current dotted tag path: the main tag followed by
	// each scope tag in push order.
	ComposedTag() string
}

// Option is a function type used to configure a logger at creation.
type Option func(LoggerV1) error

// configurable is the construction-time surface options operate against.
// The internal logger implementation satisfies it in addition to LoggerV1.
type configurable interface {
	SetSink(s sink.Sink) error
	SetStore(s store.Store) error
	SetDefaultThreshold(sev severity.Severity) error
}

// WithSink is an option to provide a custom log sink.
func WithSink(s sink.Sink) Option {
	return func(l LoggerV1) error {
		if s == nil {
			return taglogerrors.NewConfigError("sink cannot be nil", nil)
		}
		c, ok := l.(configurable)
		if !ok {
			return taglogerrors.NewConfigError("logger does not accept a sink", nil)
		}
		return c.SetSink(s)
	}
}

// WithStore is an option to provide a custom persisted threshold store.
func WithStore(s store.Store) Option {
	return func(l LoggerV1) error {
		if s == nil {
			return taglogerrors.NewConfigError("store cannot be nil", nil)
		}
		c, ok := l.(configurable)
		if !ok {
			return taglogerrors.NewConfigError("logger does not accept a store", nil)
		}
		return c.SetStore(s)
	}
}

// WithDefaultThreshold is an option to set the fallback threshold used when
// no persisted value exists yet.
func WithDefaultThreshold(sev severity.Severity) Option {
	return func(l LoggerV1) error {
		if !sev.Valid() {
			return taglogerrors.NewConfigError("default threshold is not a valid severity", nil)
		}
		c, ok := l.(configurable)
		if !ok {
			return taglogerrors.NewConfigError("logger does not accept a default threshold", nil)
		}
		return c.SetDefaultThreshold(sev)
	}
}

// WithEnabled is an option to set the initial state of the global kill switch.
func WithEnabled(enabled bool) Option {
	return func(l LoggerV1) error {
		l.SetEnabled(enabled)
		return nil
	}
}
