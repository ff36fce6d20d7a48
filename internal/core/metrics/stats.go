// Package metrics derives read-only campaign statistics from a campaign and
// its submissions. Nothing here is persisted; callers recompute on every
// read and identical inputs always give identical results.
package metrics

import (
	"github.com/shopspring/decimal"

	"creator-campaigns/internal/core/domain"
)

// CampaignStats are the statistics shown on a campaign dashboard.
type CampaignStats struct {
	BudgetClaimed     float64 `json:"budget_claimed"`
	BudgetRemaining   float64 `json:"budget_remaining"`
	BudgetUtilization float64 `json:"budget_utilization"`
	TotalViews        int64   `json:"total_views"`
	ValidViews        int64   `json:"valid_views"`
	CPM               float64 `json:"cpm"`
	EffectiveCPM      float64 `json:"effective_cpm"`
	UniqueCreators    int     `json:"unique_creators"`
	SubmissionCount   int     `json:"submission_count"`
	ApprovedCount     int     `json:"approved_count"`
	DeniedCount       int     `json:"denied_count"`
	PendingCount      int     `json:"pending_count"`
	PaidCount         int     `json:"paid_count"`
}

var thousand = decimal.NewFromInt(1000)

// Compute returns the statistics of c over the submissions that belong to it.
// Submissions for other campaigns are ignored. Approved counts include paid
// submissions. Every ratio is 0 when its denominator is 0. NaN or infinite
// amounts count as 0.
func Compute(c domain.Campaign, submissions []domain.Submission) CampaignStats {
	var (
		stats    CampaignStats
		claimed  = decimal.Zero
		creators = make(map[string]struct{})
	)

	for _, s := range submissions {
		if s.CampaignID != c.ID {
			continue
		}
		stats.SubmissionCount++
		creators[s.CreatorID] = struct{}{}
		stats.TotalViews += s.Views

		if s.ClaimsBudget() {
			claimed = claimed.Add(domain.Amount(s.PaymentAmount))
		}
		if s.Status != domain.SubmissionDenied {
			stats.ValidViews += s.Views
		}

		switch s.Status {
		case domain.SubmissionApproved:
			stats.ApprovedCount++
		case domain.SubmissionPaid:
			stats.ApprovedCount++
			stats.PaidCount++
		case domain.SubmissionDenied:
			stats.DeniedCount++
		case domain.SubmissionPending:
			stats.PendingCount++
		}
	}

	stats.UniqueCreators = len(creators)
	stats.BudgetClaimed = claimed.InexactFloat64()
	stats.CPM = perThousand(claimed, stats.TotalViews)
	stats.EffectiveCPM = perThousand(claimed, stats.ValidViews)

	budget := domain.Amount(c.TotalBudget)
	if remaining := budget.Sub(claimed); remaining.IsPositive() {
		stats.BudgetRemaining = remaining.InexactFloat64()
	}
	if budget.IsPositive() {
		stats.BudgetUtilization = claimed.Div(budget).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return stats
}

func perThousand(amount decimal.Decimal, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return amount.Div(decimal.NewFromInt(views)).Mul(thousand).InexactFloat64()
}
