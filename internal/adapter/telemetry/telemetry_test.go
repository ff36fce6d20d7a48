package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-campaigns/internal/core/validation"
)

func TestObserveValidation(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveValidation("full", nil)
	m.ObserveValidation("full", validation.Violations{
		{Field: validation.FieldTitle, Message: "Title is required"},
		{Field: validation.FieldEndDate, Message: "End date must be in the future"},
	})
	m.ObserveValidation("step", validation.Violations{{Field: validation.FieldTitle, Message: "title is required"}})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("full", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("full", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("step", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Violations.WithLabelValues("full", validation.FieldTitle)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Violations.WithLabelValues("step", validation.FieldTitle)))
}

func TestObserveFallback(t *testing.T) {
	m := NewMetrics("test")
	m.ObserveFallback("platforms", "myspace")
	m.ObserveFallback("platforms", "friendster")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Fallbacks.WithLabelValues("platforms")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := NewMetrics("test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/campaigns/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestLatency), "both paths share one route label")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_http_request_duration_seconds_count{method="GET",route="/campaigns/{id}",status="418"} 2`)
}
