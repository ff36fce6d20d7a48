package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"creator-campaigns/internal/core/validation"
)

// Metrics holds all Prometheus metrics of the service. It implements
// port.Telemetry.
type Metrics struct {
	// Validation metrics
	Validations *prometheus.CounterVec
	Violations  *prometheus.CounterVec

	// Normalization metrics
	Fallbacks *prometheus.CounterVec

	// HTTP metrics
	RequestLatency *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates all metrics on a dedicated registry that also carries
// the Go runtime and process collectors.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Campaign validations by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		Violations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_violations_total",
				Help:      "Violated business rules by mode and field",
			},
			[]string{"mode", "field"},
		),
		Fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "normalization_fallbacks_total",
				Help:      "Stored values replaced by a default during normalization",
			},
			[]string{"field"},
		),
		RequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route", "status"},
		),
		registry: reg,
	}
}

// Handler returns the Prometheus metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveValidation records a validation outcome.
func (m *Metrics) ObserveValidation(mode string, violations validation.Violations) {
	outcome := "valid"
	if len(violations) > 0 {
		outcome = "invalid"
	}
	m.Validations.WithLabelValues(mode, outcome).Inc()
	for _, v := range violations {
		m.Violations.WithLabelValues(mode, v.Field).Inc()
	}
}

// ObserveFallback records a normalization fallback. The raw value is not
// used as a label.
func (m *Metrics) ObserveFallback(field string, _ any) {
	m.Fallbacks.WithLabelValues(field).Inc()
}

// Middleware records request latency labelled with the matched chi route
// pattern rather than the raw path.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestLatency.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
