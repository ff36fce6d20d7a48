package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creator-campaigns/internal/adapter/telemetry"
	"creator-campaigns/internal/adapter/usecase"
	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/port"
	"creator-campaigns/internal/core/port/mocks"
	"creator-campaigns/internal/core/scenario"
)

var now = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

const validPPV = `{
	"id": "c1",
	"type": "pay_per_view",
	"title": "Energy drink launch",
	"description": "Film yourself trying the new flavour",
	"total_budget": 10000,
	"end_date": "2026-02-10T00:00:00Z",
	"platforms": ["TikTok", "IG"],
	"rate_per_thousand": 5,
	"max_payout_per_submission": 500
}`

func newServer(t *testing.T) (*httptest.Server, *mocks.MockCampaignRepository) {
	t.Helper()
	repo := mocks.NewMockCampaignRepository(t)
	svc := usecase.NewCampaignUseCase(repo, usecase.WithClock(func() time.Time { return now }))
	h := NewHandler(svc, slog.New(slog.DiscardHandler), WithMetrics(telemetry.NewMetrics("test"), "/metrics"))
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, repo
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func TestValidateEndpoint(t *testing.T) {
	srv, _ := newServer(t)

	resp := post(t, srv.URL+"/api/v1/campaigns/validate", validPPV)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[campaignResp](t, resp)
	assert.Equal(t, "payPerView", body.Campaign["type"])
	assert.Equal(t, `["tiktok","instagram"]`, body.Campaign["platforms"])

	invalid := strings.Replace(validPPV, `"total_budget": 10000`, `"total_budget": 0`, 1)
	resp = post(t, srv.URL+"/api/v1/campaigns/validate", invalid)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	verr := decode[validationErrorResp](t, resp)
	require.NotNil(t, verr.First)
	assert.Equal(t, "totalBudget", verr.First.Field)
	assert.Contains(t, verr.Errors["totalBudget"], "minimum budget")
	assert.Contains(t, verr.Errors, "maxPayoutPerSubmission")
	assert.Len(t, verr.Violations, 2)
}

func TestValidateEndpointFatalRecord(t *testing.T) {
	srv, _ := newServer(t)

	resp := post(t, srv.URL+"/api/v1/campaigns/validate", `{"title": "no type", "end_date": "2026-02-10"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[errorResp](t, resp)
	assert.Contains(t, body.Error, "campaign type is missing")

	resp = post(t, srv.URL+"/api/v1/campaigns/validate", `{not json`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateStepEndpoint(t *testing.T) {
	srv, _ := newServer(t)

	resp := post(t, srv.URL+"/api/v1/campaigns/validate/step", `{
		"record": {"type": "retainer", "title": "ok title", "platforms": "tiktok,youtube"},
		"step": "basics",
		"errors": {"title": "Title is required", "endDate": "End date is required"}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[stepResp](t, resp)
	assert.Equal(t, map[string]string{
		"description": "description is required",
		"platforms":   "Retainer campaigns must have exactly one platform",
		"endDate":     "End date is required",
	}, map[string]string(body.Errors))
	assert.Equal(t, []string{"type", "title"}, body.Clear)
	require.NotNil(t, body.First)
	assert.Equal(t, "description", body.First.Field)

	resp = post(t, srv.URL+"/api/v1/campaigns/validate/step", `{"record": {}, "step": "nowhere"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCampaignEndpoint(t *testing.T) {
	srv, repo := newServer(t)
	repo.EXPECT().SaveCampaignRecord(mock.Anything, mock.AnythingOfType("normalize.Record")).Return(nil)

	resp := post(t, srv.URL+"/api/v1/campaigns", validPPV)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/v1/campaigns/c1", resp.Header.Get("Location"))
	body := decode[campaignResp](t, resp)
	assert.Equal(t, "active", body.Campaign["status"])
}

func TestGetCampaignEndpoint(t *testing.T) {
	srv, repo := newServer(t)
	repo.EXPECT().GetCampaignRecord(mock.Anything, "missing").Return(nil, port.ErrCampaignNotFound)
	repo.EXPECT().GetCampaignRecord(mock.Anything, "broken").Return(normalize.Record{"id": "broken"}, nil)

	resp := get(t, srv.URL+"/api/v1/campaigns/missing")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = get(t, srv.URL+"/api/v1/campaigns/broken")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestStatsAndProgressEndpoints(t *testing.T) {
	srv, repo := newServer(t)

	campaign := normalize.Record{
		"id":                   "r1",
		"type":                 "retainer",
		"title":                "Fashion Brand Retainer",
		"description":          "Post daily outfit videos",
		"currency":             "EUR",
		"total_budget":         json.Number("1000"),
		"end_date":             "2026-01-20",
		"platforms":            "tiktok",
		"application_deadline": "2026-01-15",
		"deliverables":         map[string]any{"mode": "totalVideos", "total_videos": 4},
	}
	subs := []normalize.Record{
		{"id": "s1", "campaign_id": "r1", "creator_id": "a", "submitted_date": "2026-01-05", "views": 2000, "payment_amount": 100, "status": "paid"},
		{"id": "s2", "campaign_id": "r1", "creator_id": "b", "submitted_date": "2026-01-06", "views": 0, "payment_amount": 0, "status": "pending"},
	}
	repo.EXPECT().GetCampaignRecord(mock.Anything, "r1").Return(campaign, nil)
	repo.EXPECT().ListSubmissionRecords(mock.Anything, "r1").Return(subs, nil)

	resp := get(t, srv.URL+"/api/v1/campaigns/r1/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[statsResp](t, resp)
	assert.Equal(t, 100.0, stats.Stats.BudgetClaimed)
	assert.Equal(t, 50.0, stats.Stats.CPM)
	assert.Equal(t, 9, stats.DaysLeft)
	assert.Equal(t, "€100.00", stats.Display.BudgetClaimed)
	assert.Equal(t, "€900.00", stats.Display.BudgetRemaining)

	resp = get(t, srv.URL+"/api/v1/campaigns/r1/progress/a")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	progress := decode[progressResp](t, resp)
	assert.Equal(t, "a", progress.CreatorID)
	assert.Equal(t, 1, progress.Progress.ApprovedCount)
	assert.Equal(t, 4, progress.Progress.TotalRequired)
	assert.Equal(t, 25, progress.Progress.CompletionPercentage)
}

func TestScenarioEndpoints(t *testing.T) {
	srv, _ := newServer(t)

	resp := get(t, srv.URL+"/api/v1/scenarios")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]scenario.Scenario](t, resp)
	assert.Len(t, list, len(scenario.All()))

	resp = post(t, srv.URL+"/api/v1/scenarios/run", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[scenario.Report](t, resp)
	assert.Zero(t, report.Failed)
	assert.Equal(t, report.Total, report.Passed)

	resp = post(t, srv.URL+"/api/v1/scenarios/valid-retainer/run", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[scenario.Result](t, resp)
	assert.True(t, res.Passed)

	resp = post(t, srv.URL+"/api/v1/scenarios/nope/run", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newServer(t)

	resp := post(t, srv.URL+"/api/v1/scenarios/run", "")
	resp.Body.Close()

	resp = get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/api/v1/scenarios/run"`)
}
