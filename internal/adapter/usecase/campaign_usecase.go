package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/metrics"
	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/port"
	"creator-campaigns/internal/core/scenario"
	"creator-campaigns/internal/core/validation"
)

// Validation modes reported to telemetry.
const (
	ModeFull     = "full"
	ModeStep     = "step"
	ModeScenario = "scenario"
)

// CampaignUseCase loads flat records from the repository, normalizes them
// and hands the canonical campaigns to the validation and metrics engines.
// It implements port.CampaignUseCase and holds no per-request state.
type CampaignUseCase struct {
	repo      port.CampaignRepository
	telemetry port.Telemetry
	logger    *slog.Logger
	now       func() time.Time

	normalizer *normalize.Normalizer
	validator  *validation.Validator
}

// Option configures a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithTelemetry reports validations and normalization fallbacks to t.
func WithTelemetry(t port.Telemetry) Option {
	return func(u *CampaignUseCase) { u.telemetry = t }
}

// WithLogger sets the logger. Normalization fallbacks are logged through
// it at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(u *CampaignUseCase) { u.logger = logger }
}

// WithClock sets the clock used for date rules and days-left counts.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{
		repo:      repo,
		telemetry: noopTelemetry{},
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.normalizer = normalize.New(
		normalize.WithLogger(u.logger),
		normalize.WithFallbackObserver(u.telemetry.ObserveFallback),
	)
	u.validator = validation.New(validation.WithClock(u.now))
	return u
}

// ValidateRecord normalizes rec and runs full validation on the result.
func (u *CampaignUseCase) ValidateRecord(_ context.Context, rec normalize.Record) (domain.Campaign, error) {
	c, err := u.normalizer.Campaign(rec)
	if err != nil {
		return domain.Campaign{}, err
	}
	return u.validate(c, ModeFull)
}

// ValidateStep validates one wizard step of a draft. The request's error
// map is not modified; the merged map is returned in the response.
func (u *CampaignUseCase) ValidateStep(_ context.Context, req port.StepReq) (*port.StepResp, error) {
	fields := req.Fields
	if len(fields) == 0 {
		fields = validation.StepFields(req.Step)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("step %q: no fields to validate", req.Step)
	}

	c, err := u.normalizer.Draft(req.Record)
	if err != nil {
		return nil, err
	}

	diff := u.validator.ValidateStep(c, fields)
	u.telemetry.ObserveValidation(ModeStep, diff.Set)

	resp := &port.StepResp{Diff: diff, Errors: req.Errors.Apply(diff)}
	if first, ok := resp.Errors.First(); ok {
		resp.First = &first
	}
	return resp, nil
}

// CreateCampaign validates rec and stores the accepted campaign in its
// canonical encoding. Accepted drafts become active.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, rec normalize.Record) (domain.Campaign, error) {
	if rec.String("id") == "" {
		rec = maps.Clone(rec)
		rec["id"] = uuid.NewString()
	}

	c, err := u.ValidateRecord(ctx, rec)
	if err != nil {
		return domain.Campaign{}, err
	}
	if c.Status == domain.CampaignStatusDraft {
		c.Status = domain.CampaignStatusActive
	}

	if err = u.repo.SaveCampaignRecord(ctx, normalize.Encode(c)); err != nil {
		return domain.Campaign{}, fmt.Errorf("save campaign %q: %w", c.ID, err)
	}
	u.logger.Info("campaign created", slog.String("campaign_id", c.ID), slog.String("type", string(c.Type())))
	return c, nil
}

// GetCampaign loads and normalizes a stored campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	rec, err := u.repo.GetCampaignRecord(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	return u.normalizer.Campaign(rec)
}

// GetStats recomputes campaign statistics from the stored submissions.
func (u *CampaignUseCase) GetStats(ctx context.Context, id string) (*port.StatsResp, error) {
	c, subs, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := metrics.Compute(c, subs)
	return &port.StatsResp{
		CampaignID: c.ID,
		Stats:      stats,
		DaysLeft:   domain.DaysLeft(c.EndDate, u.now()),
		Display: port.StatsDisplay{
			TotalBudget:     domain.FormatCurrency(c.TotalBudget, c.Currency),
			BudgetClaimed:   domain.FormatCurrency(stats.BudgetClaimed, c.Currency),
			BudgetRemaining: domain.FormatCurrency(stats.BudgetRemaining, c.Currency),
			CPM:             domain.FormatCurrency(stats.CPM, c.Currency),
			EffectiveCPM:    domain.FormatCurrency(stats.EffectiveCPM, c.Currency),
		},
	}, nil
}

// GetProgress returns the creator's progress on a retainer campaign.
func (u *CampaignUseCase) GetProgress(ctx context.Context, campaignID, creatorID string) (*port.ProgressResp, error) {
	c, subs, err := u.load(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Type() != domain.CampaignTypeRetainer {
		return nil, fmt.Errorf("campaign %q: %w", campaignID, port.ErrNotRetainer)
	}
	return &port.ProgressResp{
		CampaignID: c.ID,
		CreatorID:  creatorID,
		Progress:   domain.ComputeRetainerProgress(subs, c, creatorID),
	}, nil
}

// ListScenarios returns the registered validation scenarios.
func (u *CampaignUseCase) ListScenarios(context.Context) []scenario.Scenario {
	return scenario.All()
}

// RunScenario runs a single scenario against the validator.
func (u *CampaignUseCase) RunScenario(_ context.Context, id string) (scenario.Result, error) {
	return scenario.Run(id, u.validateScenario, u.now())
}

// RunScenarios runs the whole scenario registry.
func (u *CampaignUseCase) RunScenarios(context.Context) scenario.Report {
	report := scenario.RunAll(u.validateScenario, u.now())
	if report.Failed > 0 {
		u.logger.Warn("scenario failures", slog.Int("failed", report.Failed), slog.Int("total", report.Total))
	}
	return report
}

func (u *CampaignUseCase) validateScenario(c domain.Campaign) error {
	_, err := u.validate(c, ModeScenario)
	return err
}

func (u *CampaignUseCase) validate(c domain.Campaign, mode string) (domain.Campaign, error) {
	violations := u.validator.Check(c)
	u.telemetry.ObserveValidation(mode, violations)
	if len(violations) > 0 {
		return domain.Campaign{}, &validation.Error{Violations: violations}
	}
	return c, nil
}

// load returns a campaign with its submissions. Submissions that cannot
// be normalized are logged and left out of the result.
func (u *CampaignUseCase) load(ctx context.Context, id string) (domain.Campaign, []domain.Submission, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return domain.Campaign{}, nil, err
	}
	recs, err := u.repo.ListSubmissionRecords(ctx, id)
	if err != nil {
		return domain.Campaign{}, nil, fmt.Errorf("list submissions of %q: %w", id, err)
	}

	subs := make([]domain.Submission, 0, len(recs))
	for _, rec := range recs {
		s, err := u.normalizer.Submission(rec)
		if err != nil {
			u.logger.Warn("skipping submission", slog.String("campaign_id", id), slog.Any("error", err))
			continue
		}
		subs = append(subs, s)
	}
	return c, subs, nil
}

type noopTelemetry struct{}

func (noopTelemetry) ObserveValidation(string, validation.Violations) {}
func (noopTelemetry) ObserveFallback(string, any)                     {}
