// Package metrics exposes Prometheus collectors for the identifier codec and
// the HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "socialid"

// Metrics holds the collectors registered by the service. Each Metrics owns
// its registry so tests can create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	codecOperations *prometheus.CounterVec // By operation
	codecItems      *prometheus.CounterVec // By operation

	httpRequests *prometheus.CounterVec   // By method, route and status
	httpDuration *prometheus.HistogramVec // By method and route
}

// New creates a Metrics with Go runtime and process collectors attached.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		codecOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "codec",
			Name:      "operations_total",
			Help:      "Total number of identifier codec operations",
		}, []string{"operation"}),

		codecItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "codec",
			Name:      "items_total",
			Help:      "Total number of identifiers handled by codec operations",
		}, []string{"operation"}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.codecOperations,
		m.codecItems,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// ObserveCodec counts one codec operation touching items identifiers.
func (m *Metrics) ObserveCodec(operation string, items int) {
	m.codecOperations.WithLabelValues(operation).Inc()
	if items > 0 {
		m.codecItems.WithLabelValues(operation).Add(float64(items))
	}
}

// ObserveRequest records one finished HTTP request. Route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
