package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	taglogmetrics "github.com/taglog-labs/taglog/pkg/taglog/v1/metrics"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
	taglogsink "github.com/taglog-labs/taglog/pkg/taglog/v1/sink"
)

// MetricsSink decorates another sink with Prometheus counters for emitted
// messages (labeled by severity) and reported exceptions. It changes no
// observable delivery behavior; every call is forwarded unchanged.
type MetricsSink struct {
	next       taglogsink.Sink
	emitted    *prometheus.CounterVec
	exceptions prometheus.Counter
}

var _ taglogsink.Sink = (*MetricsSink)(nil)

// NewMetricsSink wraps next with counters registered on the given
// provider's registry.
func NewMetricsSink(next taglogsink.Sink, provider taglogmetrics.RegistryProvider) (*MetricsSink, error) {
	m := &MetricsSink{
		next: next,
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taglog_messages_emitted_total",
			Help: "Total log messages forwarded to the sink, by severity.",
		}, []string{"severity"}),
		exceptions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taglog_exceptions_emitted_total",
			Help: "Total exceptions forwarded to the sink.",
		}),
	}
	reg := provider.Registry()
	if err := reg.Register(m.emitted); err != nil {
		return nil, err
	}
	if err := reg.Register(m.exceptions); err != nil {
		return nil, err
	}
	return m, nil
}

// Emit counts the call and forwards it.
func (m *MetricsSink) Emit(sev severity.Severity, logCtx any, format string, args ...any) {
	m.emitted.WithLabelValues(sev.String()).Inc()
	m.next.Emit(sev, logCtx, format, args...)
}

// EmitException counts the exception and forwards it.
func (m *MetricsSink) EmitException(err error, logCtx any) {
	m.exceptions.Inc()
	m.next.EmitException(err, logCtx)
}
