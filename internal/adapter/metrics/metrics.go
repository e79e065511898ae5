package metrics

import (
	"net/http"
	"time"

	"loyalty-pass-service/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements ports.MetricsRecorder on a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	// Store writes by operation ("create", "update")
	RecordWrites *prometheus.CounterVec

	// Pass builds by outcome
	PassesGenerated *prometheus.CounterVec

	// Time spent loading the template and signing the archive
	GenerateLatency prometheus.Histogram

	// Size of the signed archives handed to clients
	PassSize prometheus.Histogram
}

// New creates a Metrics instance on its own registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RecordWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loyalty_record_writes_total",
			Help: "Total loyalty record writes by operation",
		}, []string{"operation"}),

		PassesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loyalty_passes_generated_total",
			Help: "Total pass generation attempts by outcome",
		}, []string{"outcome"}),

		GenerateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loyalty_pass_generate_duration_seconds",
			Help:    "Duration of pass generation including template load and signing",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		PassSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loyalty_pass_size_bytes",
			Help:    "Size of generated pass archives",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 12),
		}),
	}
}

// IncrementRecordWrite records a store write.
func (m *Metrics) IncrementRecordWrite(operation string) {
	if m != nil {
		m.RecordWrites.WithLabelValues(operation).Inc()
	}
}

// ObservePass records one pass generation attempt.
func (m *Metrics) ObservePass(outcome string, d time.Duration, size int) {
	if m == nil {
		return
	}
	m.PassesGenerated.WithLabelValues(outcome).Inc()
	m.GenerateLatency.Observe(d.Seconds())
	if outcome == ports.PassOutcomeSuccess {
		m.PassSize.Observe(float64(size))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
