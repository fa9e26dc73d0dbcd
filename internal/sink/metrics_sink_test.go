package sink_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taglog-labs/taglog/internal/metrics"
	"github.com/taglog-labs/taglog/internal/sink"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
)

// countingSink records call counts so forwarding can be asserted without
// inspecting output.
type countingSink struct {
	emits      int
	exceptions int
	lastFormat string
	lastArgs   []any
}

func (s *countingSink) Emit(sev severity.Severity, logCtx any, format string, args ...any) {
	s.emits++
	s.lastFormat = format
	s.lastArgs = args
}

func (s *countingSink) EmitException(err error, logCtx any) {
	s.exceptions++
}

func TestMetricsSinkCountsBySeverity(t *testing.T) {
	next := &countingSink{}
	provider := metrics.NewPrometheusRegistryProvider()
	m, err := sink.NewMetricsSink(next, provider)
	require.NoError(t, err)

	m.Emit(severity.Log, nil, "a")
	m.Emit(severity.Log, nil, "b")
	m.Emit(severity.Error, nil, "c")

	families, err := provider.Registry().Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "taglog_messages_emitted_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "severity" {
					counts[label.GetValue()] = metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, 2.0, counts["LOG"])
	assert.Equal(t, 1.0, counts["ERROR"])
	assert.Equal(t, 3, next.emits, "every call is forwarded")
}

func TestMetricsSinkCountsExceptions(t *testing.T) {
	next := &countingSink{}
	provider := metrics.NewPrometheusRegistryProvider()
	m, err := sink.NewMetricsSink(next, provider)
	require.NoError(t, err)

	m.EmitException(errors.New("boom"), nil)
	m.EmitException(errors.New("boom again"), nil)

	count, err := testutil.GatherAndCount(provider.Registry(), "taglog_exceptions_emitted_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one series for the exception counter")
	assert.Equal(t, 2, next.exceptions)
}

func TestMetricsSinkForwardsTemplateUnchanged(t *testing.T) {
	next := &countingSink{}
	m, err := sink.NewMetricsSink(next, metrics.NewPrometheusRegistryProvider())
	require.NoError(t, err)

	m.Emit(severity.Log, nil, "%s: %s", "Main", "hello")
	assert.Equal(t, "%s: %s", next.lastFormat)
	assert.Equal(t, []any{"Main", "hello"}, next.lastArgs)
}

func TestMetricsSinkDoubleRegistrationFails(t *testing.T) {
	provider := metrics.NewPrometheusRegistryProvider()
	_, err := sink.NewMetricsSink(&countingSink{}, provider)
	require.NoError(t, err)

	_, err = sink.NewMetricsSink(&countingSink{}, provider)
	assert.Error(t, err, "the same registry cannot hold two copies of the counters")
}
