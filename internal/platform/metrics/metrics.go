package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	EstablishmentsRegistered prometheus.Counter
	HTTPRequestDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EstablishmentsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "edubase_establishments_registered_total",
			Help: "Total number of establishments registered in the system",
		}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "edubase_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementEstablishmentsRegistered increments the registered counter by 1
func (m *Metrics) IncrementEstablishmentsRegistered() {
	m.EstablishmentsRegistered.Inc()
}

// ObserveRequestDuration records a single request latency observation
func (m *Metrics) ObserveRequestDuration(method, route string, status int, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
