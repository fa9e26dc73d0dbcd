package sink_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taglog-labs/taglog/internal/sink"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
)

func TestSlogSinkTextOutput(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSlogSink(severity.Verbose, sink.FormatText, &buf)

	s.Emit(severity.Log, nil, "%s: %s", "Main.load", "ready")

	out := buf.String()
	assert.Contains(t, out, "Main.load: ready")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "severity=LOG")
}

func TestSlogSinkJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSlogSink(severity.Verbose, sink.FormatJSON, &buf)

	s.Emit(severity.Warning, nil, "%s: %s", "Main", "careful")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Main: careful", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "WARNING", record["severity"])
}

func TestSlogSinkHonorsMinimumSeverity(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSlogSink(severity.Warning, sink.FormatText, &buf)

	s.Emit(severity.Log, nil, "quiet")
	assert.Zero(t, buf.Len(), "below-minimum records are dropped by the handler")

	s.Emit(severity.Error, nil, "loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestSlogSinkEmitException(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSlogSink(severity.Verbose, sink.FormatJSON, &buf)

	s.EmitException(errors.New("connection reset"), nil)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "connection reset", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "EXCEPTION", record["severity"])
}

func TestSlogSinkEmitExceptionNilError(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSlogSink(severity.Verbose, sink.FormatJSON, &buf)

	s.EmitException(nil, nil)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Null", record["msg"])
}

func TestSlogSinkAttachesNonContextValues(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSlogSink(severity.Verbose, sink.FormatJSON, &buf)

	s.Emit(severity.Log, "request-7", "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request-7", record["context"])
}

func TestSlogSinkUnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSlogSink(severity.Verbose, "xml", &buf)

	s.Emit(severity.Log, nil, "hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
