package metrics

import (
	"net/http"
	"time"

	"usdt-pay-verifier/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Verification implements ports.VerificationMetrics.
type Verification struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewVerification registers the verification collectors on a fresh registry
// together with the Go and process collectors.
func NewVerification() *Verification {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Verification{
		registry: reg,
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "verifier",
				Name:      "verifications_total",
				Help:      "Verification attempts by payment type and outcome",
			},
			[]string{"payment_type", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "verifier",
				Name:      "verification_duration_seconds",
				Help:      "End-to-end verification latency including upstream lookups",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
			},
			[]string{"payment_type"},
		),
	}
}

// ObserveVerification records one orchestrator run.
func (m *Verification) ObserveVerification(paymentType domain.PaymentType, outcome string, elapsed time.Duration) {
	pt := string(paymentType)
	if !paymentType.Valid() {
		pt = "unknown"
	}
	m.attempts.WithLabelValues(pt, outcome).Inc()
	m.duration.WithLabelValues(pt).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Verification) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
