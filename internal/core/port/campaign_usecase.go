package port

import (
	"context"

	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/metrics"
	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/scenario"
	"creator-campaigns/internal/core/validation"
)

// CampaignUseCase defines the business operations exposed to inbound
// adapters. This interface represents the primary port into the
// application domain.
type CampaignUseCase interface {
	// ValidateRecord normalizes a flat record and runs full validation.
	// It returns a *validation.Error when business rules are violated and
	// a normalize error when the record cannot become a campaign at all.
	ValidateRecord(ctx context.Context, rec normalize.Record) (domain.Campaign, error)

	// ValidateStep validates the fields of one wizard step of a draft and
	// merges the result into the caller's error map.
	ValidateStep(ctx context.Context, req StepReq) (*StepResp, error)

	// CreateCampaign validates a record and stores the accepted campaign.
	// A missing id is generated.
	CreateCampaign(ctx context.Context, rec normalize.Record) (domain.Campaign, error)

	// GetCampaign loads and normalizes a stored campaign.
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)

	// GetStats recomputes the statistics of a campaign from its stored
	// submissions. Nothing is cached.
	GetStats(ctx context.Context, id string) (*StatsResp, error)

	// GetProgress returns a creator's progress on a retainer campaign.
	GetProgress(ctx context.Context, campaignID, creatorID string) (*ProgressResp, error)

	// ListScenarios returns the registered validation scenarios.
	ListScenarios(ctx context.Context) []scenario.Scenario
	// RunScenario runs one scenario against the validator.
	RunScenario(ctx context.Context, id string) (scenario.Result, error)
	// RunScenarios runs every scenario against the validator.
	RunScenarios(ctx context.Context) scenario.Report
}

// Telemetry receives events worth counting. Implementations must be safe
// for concurrent use.
type Telemetry interface {
	// ObserveValidation is called after every full or step validation.
	ObserveValidation(mode string, violations validation.Violations)
	// ObserveFallback is called for every value the normalizer replaced
	// with a default. Its signature matches normalize.FallbackObserver.
	ObserveFallback(field string, raw any)
}

// StepReq is a step validation request. Fields, when set, override the
// fields of Step.
type StepReq struct {
	Record normalize.Record
	Step   validation.Step
	Fields []string
	Errors validation.FormErrors
}

// StepResp carries the diff produced by a step and the caller's error map
// with the diff applied. First is nil when the merged map is empty.
type StepResp struct {
	Diff   validation.Diff
	Errors validation.FormErrors
	First  *validation.Violation
}

// StatsResp wraps campaign statistics with display strings formatted in the
// campaign currency.
type StatsResp struct {
	CampaignID string
	Stats      metrics.CampaignStats
	DaysLeft   int
	Display    StatsDisplay
}

// StatsDisplay holds preformatted money amounts.
type StatsDisplay struct {
	TotalBudget     string `json:"total_budget"`
	BudgetClaimed   string `json:"budget_claimed"`
	BudgetRemaining string `json:"budget_remaining"`
	CPM             string `json:"cpm"`
	EffectiveCPM    string `json:"effective_cpm"`
}

// ProgressResp is a creator's retainer progress.
type ProgressResp struct {
	CampaignID string
	CreatorID  string
	Progress   domain.RetainerProgress
}
