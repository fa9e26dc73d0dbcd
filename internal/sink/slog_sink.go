// Package sink provides the built-in sink implementations: a slog-backed
// default sink with OpenTelemetry trace correlation, and a Prometheus
// instrumentation decorator.
package sink

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
	taglogsink "github.com/taglog-labs/taglog/pkg/taglog/v1/sink"
)

// Output formats supported by the slog sink.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SlogSink implements the public sink interface on top of the standard
// log/slog library. It is the default sink for new loggers. The sink keeps
// its own minimum severity: the facade's gate decides whether a call
// reaches the sink, and the sink may still drop what the handler level
// rejects.
type SlogSink struct {
	logger *slog.Logger
}

// Compile-time check against the public sink interface.
var _ taglogsink.Sink = (*SlogSink)(nil)

// NewSlogSink creates a sink writing to w (stderr when nil) in the given
// format ("text" or "json", defaulting to text) that accepts calls at min
// or more severe.
func NewSlogSink(min severity.Severity, format string, w io.Writer) *SlogSink {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slogLevel(min)}

	var base slog.Handler
	switch strings.ToLower(format) {
	case FormatJSON:
		base = slog.NewJSONHandler(w, opts)
	case FormatText:
		fallthrough
	default:
		base = slog.NewTextHandler(w, opts)
	}

	return &SlogSink{logger: slog.New(NewOtelHandler(base))}
}

// Emit renders the formatted message. When the opaque per-call context is a
// context.Context it is passed to the handler chain, which lets the otel
// middleware pick up an active span; any other non-nil context value is
// attached as an attribute unchanged.
func (s *SlogSink) Emit(sev severity.Severity, logCtx any, format string, args ...any) {
	ctx, attrs := splitContext(logCtx)
	attrs = append(attrs, slog.String("severity", sev.String()))
	s.logger.LogAttrs(ctx, slogLevel(sev), fmt.Sprintf(format, args...), attrs...)
}

// EmitException reports an exception at error level through the dedicated
// exception path.
func (s *SlogSink) EmitException(err error, logCtx any) {
	msg := "Null"
	if err != nil {
		msg = err.Error()
	}
	ctx, attrs := splitContext(logCtx)
	attrs = append(attrs, slog.String("severity", severity.Exception.String()))
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

// splitContext separates the opaque per-call context into a context.Context
// for the handler chain and attributes for the record.
func splitContext(logCtx any) (context.Context, []slog.Attr) {
	if logCtx == nil {
		return context.Background(), nil
	}
	if ctx, ok := logCtx.(context.Context); ok {
		return ctx, nil
	}
	return context.Background(), []slog.Attr{slog.Any("context", logCtx)}
}

// slogLevel maps a taglog severity onto the slog level scale.
func slogLevel(sev severity.Severity) slog.Level {
	switch sev {
	case severity.Verbose:
		return slog.LevelDebug
	case severity.Log:
		return slog.LevelInfo
	case severity.Warning:
		return slog.LevelWarn
	case severity.Error, severity.Assert, severity.Exception:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
