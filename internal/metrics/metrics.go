// Package metrics defines the Prometheus collectors for the booking server.
//
// Collectors live on a per-server registry rather than the global default so
// tests can build any number of servers in one process.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by the domain counters.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds every collector the server records.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// IntentsCreated counts create-intent calls by package and outcome.
	IntentsCreated *prometheus.CounterVec
	// PaymentsConfirmed counts confirm calls by outcome.
	PaymentsConfirmed *prometheus.CounterVec
	// ContractsSubmitted counts manual contract submissions by outcome.
	ContractsSubmitted *prometheus.CounterVec
	// Notifications counts notification emails by kind and outcome.
	Notifications *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"handler", "method"},
		),
		IntentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "everafter_payment_intents_total",
				Help: "Payment intents requested, by package and outcome",
			},
			[]string{"package", "outcome"},
		),
		PaymentsConfirmed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "everafter_payment_confirmations_total",
				Help: "Payment confirmations, by outcome",
			},
			[]string{"outcome"},
		),
		ContractsSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "everafter_contracts_total",
				Help: "Manual contract submissions, by outcome",
			},
			[]string{"outcome"},
		),
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "everafter_notifications_total",
				Help: "Notification emails, by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.IntentsCreated,
		m.PaymentsConfirmed,
		m.ContractsSubmitted,
		m.Notifications,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
