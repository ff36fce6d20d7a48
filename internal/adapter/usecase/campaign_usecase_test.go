package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/port"
	"creator-campaigns/internal/core/port/mocks"
	"creator-campaigns/internal/core/validation"
)

var now = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

type fakeTelemetry struct {
	mu        sync.Mutex
	modes     []string
	failures  int
	fallbacks []string
}

func (f *fakeTelemetry) ObserveValidation(mode string, violations validation.Violations) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modes = append(f.modes, mode)
	if len(violations) > 0 {
		f.failures++
	}
}

func (f *fakeTelemetry) ObserveFallback(field string, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fallbacks = append(f.fallbacks, field)
}

func newUseCase(repo port.CampaignRepository, tel port.Telemetry) *CampaignUseCase {
	return NewCampaignUseCase(repo, WithTelemetry(tel), WithClock(func() time.Time { return now }))
}

func retainerRecord() normalize.Record {
	return normalize.Record{
		"id":                   "c1",
		"type":                 "retainer",
		"title":                "Fashion Brand Retainer",
		"description":          "Post daily outfit videos",
		"currency":             "USD",
		"total_budget":         5000,
		"end_date":             "2026-03-01",
		"platforms":            "tiktok",
		"application_deadline": "2026-01-20",
		"deliverables":         `{"mode":"videosPerDay","videos_per_day":1,"duration_days":3}`,
	}
}

func submissionRecords() []normalize.Record {
	return []normalize.Record{
		{"id": "s1", "campaign_id": "c1", "creator_id": "a", "platform": "tiktok", "submitted_date": "2026-01-05", "views": 1000, "payment_amount": 10, "status": "approved"},
		{"id": "s2", "campaign_id": "c1", "creator_id": "a", "platform": "tiktok", "submitted_date": "2026-01-06", "views": 2000, "payment_amount": 20, "status": "paid"},
		{"id": "s3", "campaign_id": "c1", "creator_id": "b", "platform": "tiktok", "submitted_date": "2026-01-07", "views": 1000, "payment_amount": 5, "status": "rejected"},
		{"id": "s4", "campaign_id": "c1", "creator_id": "b", "submitted_date": "not a date", "views": 99999, "payment_amount": 999, "status": "paid"},
	}
}

func TestValidateRecord(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	tel := &fakeTelemetry{}
	svc := newUseCase(repo, tel)

	c, err := svc.ValidateRecord(context.Background(), retainerRecord())
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignTypeRetainer, c.Type())

	rec := retainerRecord()
	rec["title"] = ""
	rec["platforms"] = "tiktok,instagram"
	_, err = svc.ValidateRecord(context.Background(), rec)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.FormErrors{
		validation.FieldTitle:     "Title is required",
		validation.FieldPlatforms: "Retainer campaigns must have exactly one platform",
	}, verr.Fields())

	_, err = svc.ValidateRecord(context.Background(), normalize.Record{"end_date": "2026-03-01"})
	assert.ErrorIs(t, err, normalize.ErrMissingType)

	assert.Equal(t, []string{ModeFull, ModeFull}, tel.modes, "fatal records never reach the validator")
	assert.Equal(t, 1, tel.failures)
}

func TestValidateRecordReportsFallbacks(t *testing.T) {
	tel := &fakeTelemetry{}
	svc := newUseCase(mocks.NewMockCampaignRepository(t), tel)

	rec := retainerRecord()
	rec["content_type"] = "hologram"
	rec["guidelines"] = "{broken"
	_, err := svc.ValidateRecord(context.Background(), rec)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"content_type", "guidelines"}, tel.fallbacks)
}

func TestValidateStep(t *testing.T) {
	svc := newUseCase(mocks.NewMockCampaignRepository(t), &fakeTelemetry{})

	resp, err := svc.ValidateStep(context.Background(), port.StepReq{
		Record: normalize.Record{"type": "retainer", "title": "ok title"},
		Step:   validation.StepBasics,
		Errors: validation.FormErrors{validation.FieldEndDate: "End date is required", validation.FieldTitle: "Title is required"},
	})
	require.NoError(t, err)
	assert.Equal(t, validation.FormErrors{
		validation.FieldDescription: "description is required",
		validation.FieldPlatforms:   "platforms is required",
		validation.FieldEndDate:     "End date is required",
	}, resp.Errors)
	assert.Equal(t, []string{validation.FieldType, validation.FieldTitle}, resp.Diff.Clear)
	require.NotNil(t, resp.First)
	assert.Equal(t, validation.FieldDescription, resp.First.Field)

	resp, err = svc.ValidateStep(context.Background(), port.StepReq{
		Record: normalize.Record{"title": "x"},
		Fields: []string{validation.FieldTitle},
	})
	require.NoError(t, err)
	assert.Equal(t, validation.FormErrors{validation.FieldTitle: "Title must be at least 3 characters"}, resp.Errors)

	_, err = svc.ValidateStep(context.Background(), port.StepReq{Step: "nowhere"})
	assert.Error(t, err)

	_, err = svc.ValidateStep(context.Background(), port.StepReq{
		Record: normalize.Record{"end_date": "someday"},
		Step:   validation.StepDetails,
	})
	assert.ErrorIs(t, err, normalize.ErrInvalidDate)
}

func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	var saved normalize.Record
	repo.EXPECT().
		SaveCampaignRecord(mock.Anything, mock.AnythingOfType("normalize.Record")).
		Run(func(_ context.Context, rec normalize.Record) { saved = rec }).
		Return(nil)

	rec := retainerRecord()
	delete(rec, "id")
	c, err := svc.CreateCampaign(context.Background(), rec)
	require.NoError(t, err)

	_, err = uuid.Parse(c.ID)
	require.NoError(t, err)
	assert.NotContains(t, rec, "id", "the caller's record is not modified")
	assert.Equal(t, domain.CampaignStatusActive, c.Status)
	assert.Equal(t, c.ID, saved["id"])
	assert.Equal(t, "active", saved["status"])
	assert.Equal(t, "retainer", saved["type"])
}

func TestCreateCampaignRejectsInvalid(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	rec := retainerRecord()
	rec["total_budget"] = 0
	_, err := svc.CreateCampaign(context.Background(), rec)
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "SaveCampaignRecord", mock.Anything, mock.Anything)
}

func TestCreateCampaignSaveError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	boom := errors.New("connection reset")
	repo.EXPECT().SaveCampaignRecord(mock.Anything, mock.Anything).Return(boom)

	_, err := svc.CreateCampaign(context.Background(), retainerRecord())
	assert.ErrorIs(t, err, boom)
}

func TestGetStats(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	repo.EXPECT().GetCampaignRecord(mock.Anything, "c1").Return(retainerRecord(), nil)
	repo.EXPECT().ListSubmissionRecords(mock.Anything, "c1").Return(submissionRecords(), nil)

	resp, err := svc.GetStats(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.CampaignID)
	assert.Equal(t, 30.0, resp.Stats.BudgetClaimed)
	assert.Equal(t, int64(4000), resp.Stats.TotalViews)
	assert.Equal(t, int64(3000), resp.Stats.ValidViews)
	assert.Equal(t, 7.5, resp.Stats.CPM)
	assert.Equal(t, 10.0, resp.Stats.EffectiveCPM)
	assert.Equal(t, 2, resp.Stats.UniqueCreators)
	assert.Equal(t, 3, resp.Stats.SubmissionCount, "unparseable submissions are skipped")
	assert.Equal(t, 49, resp.DaysLeft)
	assert.Equal(t, port.StatsDisplay{
		TotalBudget:     "$5,000.00",
		BudgetClaimed:   "$30.00",
		BudgetRemaining: "$4,970.00",
		CPM:             "$7.50",
		EffectiveCPM:    "$10.00",
	}, resp.Display)
}

func TestGetStatsNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	repo.EXPECT().GetCampaignRecord(mock.Anything, "missing").Return(nil, port.ErrCampaignNotFound)

	_, err := svc.GetStats(context.Background(), "missing")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestGetProgress(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	repo.EXPECT().GetCampaignRecord(mock.Anything, "c1").Return(retainerRecord(), nil)
	repo.EXPECT().ListSubmissionRecords(mock.Anything, "c1").Return(submissionRecords(), nil)

	resp, err := svc.GetProgress(context.Background(), "c1", "a")
	require.NoError(t, err)
	assert.Equal(t, domain.RetainerProgress{ApprovedCount: 2, TotalRequired: 3, CompletionPercentage: 67}, resp.Progress)

	resp, err = svc.GetProgress(context.Background(), "c1", "b")
	require.NoError(t, err)
	assert.Zero(t, resp.Progress.ApprovedCount)
}

func TestGetProgressNotRetainer(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	rec := retainerRecord()
	rec["type"] = "ppv"
	repo.EXPECT().GetCampaignRecord(mock.Anything, "c1").Return(rec, nil)
	repo.EXPECT().ListSubmissionRecords(mock.Anything, "c1").Return(nil, nil)

	_, err := svc.GetProgress(context.Background(), "c1", "a")
	assert.ErrorIs(t, err, port.ErrNotRetainer)
}

func TestRunScenarios(t *testing.T) {
	tel := &fakeTelemetry{}
	svc := newUseCase(mocks.NewMockCampaignRepository(t), tel)

	report := svc.RunScenarios(context.Background())
	assert.Equal(t, report.Total, report.Passed)
	assert.Len(t, tel.modes, report.Total)
	assert.Len(t, svc.ListScenarios(context.Background()), report.Total)

	res, err := svc.RunScenario(context.Background(), "invalid-budget-zero")
	require.NoError(t, err)
	assert.True(t, res.Passed, res.Details)
}

// TestConcurrentStats ensures stats recomputed concurrently from the same
// records are identical.
func TestConcurrentStats(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := newUseCase(repo, &fakeTelemetry{})

	repo.EXPECT().GetCampaignRecord(mock.Anything, "c1").Return(retainerRecord(), nil)
	repo.EXPECT().ListSubmissionRecords(mock.Anything, "c1").Return(submissionRecords(), nil)

	want, err := svc.GetStats(context.Background(), "c1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*port.StatsResp, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = svc.GetStats(context.Background(), "c1")
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
