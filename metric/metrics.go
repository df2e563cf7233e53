// Package metric exposes Prometheus instrumentation for the OLS client.
package metric

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes recorded in the outcome label.
const (
	OutcomeOK              = "ok"
	OutcomeHTTPError       = "http_error"
	OutcomeInvalidResponse = "invalid_response"
	OutcomeTransportError  = "transport_error"
)

// Metrics contains the client-side request metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates unregistered client metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ols",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of OLS API requests by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ols",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "OLS API request duration in seconds, including body validation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// Register registers every collector with reg. Collectors that are already
// registered are tolerated.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.RequestsTotal, m.RequestDuration} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

// Observe records one finished request. A nil receiver is a no-op.
func (m *Metrics) Observe(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
