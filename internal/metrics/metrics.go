// Package metrics holds the prometheus instrumentation for the service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service counters and the registry they live in.
type Manager struct {
	CounterRequests *prometheus.CounterVec
	CounterLogOps   *prometheus.CounterVec
	CounterAdvice   *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewManager creates a Manager with its own registry, including the
// standard go/process collectors.
func NewManager(namespace string) *Manager {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Manager{
		registry: reg,
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "The total number of incoming API requests",
		}, []string{"method", "status"}),
		CounterLogOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_operations_total",
			Help:      "The total number of profile mutations by operation",
		}, []string{"op"}),
		CounterAdvice: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advice_calls_total",
			Help:      "The total number of advice calls by outcome",
		}, []string{"outcome"}),
	}
}

// NewTestManager creates a Manager for tests.
func NewTestManager() *Manager {
	return NewManager("slimcoach_test")
}

// Handler serves the registry over HTTP.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IncRequest counts one served API request.
func (m *Manager) IncRequest(method string, status int) {
	m.CounterRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// IncLogOp counts one profile mutation.
func (m *Manager) IncLogOp(op string) {
	m.CounterLogOps.WithLabelValues(op).Inc()
}

// IncAdvice counts one advice call outcome: ok, quota or error.
func (m *Manager) IncAdvice(outcome string) {
	m.CounterAdvice.WithLabelValues(outcome).Inc()
}
