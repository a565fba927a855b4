// Package metrics provides Prometheus metrics for the catalog service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the Prometheus collectors for the service. All metrics
// share the "gamedex" namespace.
type Manager struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a Manager with its collectors registered on the
// default registry.
func NewManager() *Manager {
	return &Manager{
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamedex",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamedex",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// RecordRequest records one completed HTTP request.
func (m *Manager) RecordRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
