// Package logger implements the taglog core: a leveled, hierarchically-
// tagged logging facade that gates calls by severity, composes a dotted tag
// path from nested scopes, and forwards accepted calls to an external sink.
package logger

import (
	"os"

	internalsink "github.com/taglog-labs/taglog/internal/sink"
	internalstore "github.com/taglog-labs/taglog/internal/store"
	v1 "github.com/taglog-labs/taglog/pkg/taglog/v1"
	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/sink"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

const (
	// DefaultMainTag is the fallback identity tag used when a logger is
	// constructed with an empty main tag. The identity tag is never empty.
	DefaultMainTag = "Logger"

	// thresholdKeyPrefix is prepended to the main tag to derive the stable
	// store key under which the severity threshold is persisted.
	thresholdKeyPrefix = "taglog.threshold."

	// messageFormat is the raw template forwarded to the sink for calls
	// without an explicit per-call tag: composed tag, then message.
	messageFormat = "%s: %s"

	// taggedMessageFormat is the raw template for calls carrying an
	// explicit per-call tag: composed tag, explicit tag, then message.
	taggedMessageFormat = "%s.%s: %s"
)

// Logger owns a SeverityGate and a TagStack and exposes the public logging
// surface. It holds a shared, non-owned reference to the external sink and
// a derived store key for the persisted threshold.
//
// A Logger assumes a single logical owner; see the package documentation
// for the concurrency model.
type Logger struct {
	mainTag          string
	thresholdKey     string
	defaultThreshold severity.Severity

	gate *SeverityGate
	tags *TagStack
	sink sink.Sink
}

// New creates a logger with the given identity tag. An empty mainTag falls
// back to DefaultMainTag. Without options the logger writes through the
// standard slog text sink on stderr and remembers its threshold in a
// volatile in-memory store; the default threshold is Error.
func New(mainTag string, opts ...v1.Option) (*Logger, error) {
	if mainTag == "" {
		mainTag = DefaultMainTag
	}
	l := &Logger{
		mainTag:          mainTag,
		thresholdKey:     thresholdKeyPrefix + mainTag,
		defaultThreshold: severity.Error,
		tags:             NewTagStack(mainTag),
		sink:             internalsink.NewSlogSink(severity.Verbose, internalsink.FormatText, os.Stderr),
	}
	l.gate = NewSeverityGate(l.thresholdKey, l.defaultThreshold, internalstore.NewMemoryStore())

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Compile-time check against the public interface.
var _ v1.LoggerV1 = (*Logger)(nil)

// LogSeverity is the single path every logging call reduces to. When the
// gate rejects the severity nothing happens: no stringification, no
// formatting, no sink call. On acceptance the sink receives the raw format
// template and its arguments, not a pre-concatenated string.
func (l *Logger) LogSeverity(sev severity.Severity, tag string, message any, context any) {
	if !l.gate.Allowed(sev) {
		return
	}
	composed := l.tags.Composed()
	if tag != "" {
		l.sink.Emit(sev, context, taggedMessageFormat, composed, tag, stringify(message))
		return
	}
	l.sink.Emit(sev, context, messageFormat, composed, stringify(message))
}

// Log logs a message at the ordinary Log severity.
func (l *Logger) Log(message any) { l.LogSeverity(severity.Log, "", message, nil) }

// LogTagged logs at Log severity with an explicit per-call tag.
func (l *Logger) LogTagged(tag string, message any) {
	l.LogSeverity(severity.Log, tag, message, nil)
}

// LogWarning logs a message at Warning severity.
func (l *Logger) LogWarning(message any) { l.LogSeverity(severity.Warning, "", message, nil) }

// LogWarningTagged logs at Warning severity with an explicit per-call tag.
func (l *Logger) LogWarningTagged(tag string, message any) {
	l.LogSeverity(severity.Warning, tag, message, nil)
}

// LogError logs a message at Error severity.
func (l *Logger) LogError(message any) { l.LogSeverity(severity.Error, "", message, nil) }

// LogErrorTagged logs at Error severity with an explicit per-call tag.
func (l *Logger) LogErrorTagged(tag string, message any) {
	l.LogSeverity(severity.Error, tag, message, nil)
}

// LogVerbose logs a message at Verbose severity.
func (l *Logger) LogVerbose(message any) { l.LogSeverity(severity.Verbose, "", message, nil) }

// LogException reports an exception. An exception is always significant:
// severity gating is bypassed and only the global enabled flag applies.
func (l *Logger) LogException(err error) { l.LogExceptionContext(err, nil) }

// LogExceptionContext reports an exception with an opaque context reference.
func (l *Logger) LogExceptionContext(err error, context any) {
	if !l.gate.Enabled() {
		return
	}
	l.sink.EmitException(err, context)
}

// Logf forwards a caller-managed format template and args unchanged to the
// sink, gated identically to Log. No tag is injected; this is the escape
// hatch for callers who manage their own formatting.
func (l *Logger) Logf(sev severity.Severity, format string, args ...any) {
	l.LogfContext(sev, nil, format, args...)
}

// LogfContext is Logf with an opaque context reference.
func (l *Logger) LogfContext(sev severity.Severity, context any, format string, args ...any) {
	if !l.gate.Allowed(sev) {
		return
	}
	l.sink.Emit(sev, context, format, args...)
}

// PushTag appends a scope tag manually. Empty tags are silent no-ops.
func (l *Logger) PushTag(tag string) { l.tags.Push(tag) }

// PopTag removes the most-recently-pushed scope tag. Popping with nothing
// pushed is a silent no-op.
func (l *Logger) PopTag() { l.tags.Pop() }

// OpenScope opens a nested tag scope and returns its releasable handle.
// The caller must guarantee release on every exit path of the block,
// typically with defer, and release scopes in reverse order of acquisition.
func (l *Logger) OpenScope(tag string) v1.Scope { return openScope(l, tag) }

// IsAllowed reports whether a call at sev would currently pass the gate.
func (l *Logger) IsAllowed(sev severity.Severity) bool { return l.gate.Allowed(sev) }

// Enabled reports the global kill switch.
func (l *Logger) Enabled() bool { return l.gate.Enabled() }

// SetEnabled flips the global kill switch.
func (l *Logger) SetEnabled(enabled bool) { l.gate.SetEnabled(enabled) }

// Threshold reads the persisted threshold through the store on every call.
func (l *Logger) Threshold() severity.Severity { return l.gate.Threshold() }

// SetThreshold writes the threshold through to the store immediately.
func (l *Logger) SetThreshold(sev severity.Severity) { l.gate.SetThreshold(sev) }

// MainTag returns the logger's identity tag.
func (l *Logger) MainTag() string { return l.mainTag }

// SetMainTag re-establishes the logger's identity, recomputing the derived
// store key and resetting the composed tag base before any further log
// call. Pushed scope entries are not cleared; stale scopes surviving a
// reconfiguration are the caller's responsibility.
func (l *Logger) SetMainTag(tag string) {
	if tag == "" {
		tag = DefaultMainTag
	}
	l.mainTag = tag
	l.thresholdKey = thresholdKeyPrefix + tag
	l.gate.SetKey(l.thresholdKey)
	l.tags.SetMain(tag)
}

// ComposedTag returns the current dotted tag path.
func (l *Logger) ComposedTag() string { return l.tags.Composed() }

// SetSink replaces the external sink. Used by the WithSink option.
func (l *Logger) SetSink(s sink.Sink) error {
	if s == nil {
		return taglogerrors.NewConfigError("sink cannot be nil", nil)
	}
	l.sink = s
	return nil
}

// SetStore replaces the persisted threshold store. Used by the WithStore
// option.
func (l *Logger) SetStore(s store.Store) error {
	if s == nil {
		return taglogerrors.NewConfigError("store cannot be nil", nil)
	}
	l.gate.SetStore(s)
	return nil
}

// SetDefaultThreshold replaces the fallback threshold used when no
// persisted value exists. Used by the WithDefaultThreshold option.
func (l *Logger) SetDefaultThreshold(sev severity.Severity) error {
	if !sev.Valid() {
		return taglogerrors.NewConfigError("default threshold is not a valid severity", nil)
	}
	l.defaultThreshold = sev
	l.gate.SetDefault(sev)
	return nil
}
