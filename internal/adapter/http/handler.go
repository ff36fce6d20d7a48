package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"creator-campaigns/internal/core/port"
)

// Instrumentation exposes request metrics. It is satisfied by
// *telemetry.Metrics.
type Instrumentation interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use case to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router

	metrics     Instrumentation
	metricsPath string
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics instruments every route and serves the metrics at path.
func WithMetrics(m Instrumentation, path string) Option {
	return func(h *Handler) {
		h.metrics = m
		h.metricsPath = path
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
		r.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Post("/validate", h.handleValidate)
			r.Post("/validate/step", h.handleValidateStep)
			r.Get("/{id}", h.handleGetCampaign)
			r.Get("/{id}/stats", h.handleStats)
			r.Get("/{id}/progress/{creatorID}", h.handleProgress)
		})
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.handleListScenarios)
			r.Post("/run", h.handleRunScenarios)
			r.Post("/{id}/run", h.handleRunScenario)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
