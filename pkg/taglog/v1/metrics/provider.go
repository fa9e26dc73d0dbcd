package metrics

import "github.com/prometheus/client_golang/prometheus"

// RegistryProvider defines the interface for accessing the metrics registry
// used by instrumented sinks. This allows consumers of the taglog library to
// expose sink metrics via their chosen method (e.g., a Prometheus HTTP
// endpoint).
type RegistryProvider interface {
	// Registry returns the Prometheus registry containing taglog sink metrics.
	Registry() *prometheus.Registry
}
