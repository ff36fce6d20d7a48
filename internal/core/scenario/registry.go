// Package scenario holds a fixed library of named campaigns with their
// expected validation outcome. The registry is the acceptance contract of
// the validation rules: every entry must keep passing.
package scenario

import (
	"slices"
	"time"

	"creator-campaigns/internal/core/domain"
)

// Outcome is the expected result of validating a scenario campaign.
type Outcome string

const (
	OutcomeValid   Outcome = "valid"
	OutcomeInvalid Outcome = "invalid"
)

// Scenario is one registry entry. Campaign data is built relative to the
// clock passed to the runner so date rules stay stable over time.
type Scenario struct {
	ID               string   `json:"id"`
	Description      string   `json:"description"`
	Expected         Outcome  `json:"expected_outcome"`
	ExpectedContains []string `json:"expected_error_substrings,omitempty"`

	build func(now time.Time) domain.Campaign
}

// Campaign returns the scenario's campaign data as of now.
func (s Scenario) Campaign(now time.Time) domain.Campaign {
	return s.build(now)
}

func days(now time.Time, n int) time.Time {
	return now.AddDate(0, 0, n)
}

func baseCampaign(id, title string, now time.Time) domain.Campaign {
	return domain.Campaign{
		ID:                  id,
		Title:               title,
		Description:         "Create short-form videos featuring our products",
		Currency:            domain.DefaultCurrency,
		EndDate:             days(now, 60),
		Platforms:           []domain.Platform{domain.PlatformTikTok},
		ContentType:         domain.ContentTypeUGC,
		CountryAvailability: domain.CountryWorldwide,
		Visibility:          domain.Visibility{Kind: domain.VisibilityPublic},
		Status:              domain.CampaignStatusDraft,
	}
}

func retainerCampaign(id string, now time.Time) domain.Campaign {
	c := baseCampaign(id, "Fashion Brand Retainer", now)
	c.TotalBudget = 5000
	c.Details = domain.Retainer{
		ApplicationDeadline: days(now, 14),
		CreatorTiers: []domain.CreatorTier{
			{Name: "Micro", MinFollowers: 10_000, Price: 300},
			{Name: "Mid", MinFollowers: 100_000, Price: 800},
		},
		Deliverables: domain.Deliverables{
			Mode:         domain.DeliverablesVideosPerDay,
			VideosPerDay: 1,
			DurationDays: 30,
			TotalVideos:  30,
		},
	}
	return c
}

func payPerViewCampaign(id string, now time.Time) domain.Campaign {
	c := baseCampaign(id, "Energy Drink Views", now)
	c.TotalBudget = 10000
	c.Platforms = []domain.Platform{domain.PlatformTikTok, domain.PlatformInstagram}
	c.Details = domain.PayPerView{RatePerThousand: 5, MaxPayoutPerSubmission: 500}
	return c
}

func challengeCampaign(id string, now time.Time, budget float64, prize domain.PrizeConfig) domain.Campaign {
	c := baseCampaign(id, "Summer Dance Challenge", now)
	c.TotalBudget = budget
	c.Details = domain.Challenge{SubmissionDeadline: days(now, 30), Prize: prize}
	return c
}

var registry = []Scenario{
	{
		ID:          "valid-retainer",
		Description: "Retainer on a single platform with deadline before end date",
		Expected:    OutcomeValid,
		build: func(now time.Time) domain.Campaign {
			return retainerCampaign("valid-retainer", now)
		},
	},
	{
		ID:          "valid-payPerView",
		Description: "Pay-per-view with payout cap within budget",
		Expected:    OutcomeValid,
		build: func(now time.Time) domain.Campaign {
			return payPerViewCampaign("valid-payPerView", now)
		},
	},
	{
		ID:          "valid-challenge",
		Description: "Challenge with equal prizes totalling less than the budget",
		Expected:    OutcomeValid,
		build: func(now time.Time) domain.Campaign {
			return challengeCampaign("valid-challenge", now, 3000, domain.PrizeConfig{
				Distribution: domain.DistributionEqual,
				PrizeAmount:  500,
				WinnersCount: 5,
			})
		},
	},
	{
		ID:               "invalid-missing-title",
		Description:      "Campaign without a title",
		Expected:         OutcomeInvalid,
		ExpectedContains: []string{"required"},
		build: func(now time.Time) domain.Campaign {
			c := retainerCampaign("invalid-missing-title", now)
			c.Title = ""
			return c
		},
	},
	{
		ID:               "invalid-past-date",
		Description:      "End date already passed",
		Expected:         OutcomeInvalid,
		ExpectedContains: []string{"future"},
		build: func(now time.Time) domain.Campaign {
			c := payPerViewCampaign("invalid-past-date", now)
			c.EndDate = days(now, -1)
			return c
		},
	},
	{
		ID:               "invalid-budget-zero",
		Description:      "Total budget of zero",
		Expected:         OutcomeInvalid,
		ExpectedContains: []string{"minimum budget"},
		build: func(now time.Time) domain.Campaign {
			c := retainerCampaign("invalid-budget-zero", now)
			c.TotalBudget = 0
			return c
		},
	},
	{
		ID:               "invalid-retainer-multiple-platforms",
		Description:      "Retainer spread over three platforms",
		Expected:         OutcomeInvalid,
		ExpectedContains: []string{"exactly one platform"},
		build: func(now time.Time) domain.Campaign {
			c := retainerCampaign("invalid-retainer-multiple-platforms", now)
			c.Platforms = []domain.Platform{domain.PlatformTikTok, domain.PlatformInstagram, domain.PlatformYouTube}
			return c
		},
	},
	{
		ID:               "invalid-challenge-prize-exceeds-budget",
		Description:      "Challenge paying 3 x 500 on a budget of 1000",
		Expected:         OutcomeInvalid,
		ExpectedContains: []string{"exceeds budget"},
		build: func(now time.Time) domain.Campaign {
			return challengeCampaign("invalid-challenge-prize-exceeds-budget", now, 1000, domain.PrizeConfig{
				Distribution: domain.DistributionEqual,
				PrizeAmount:  500,
				WinnersCount: 3,
			})
		},
	},
	{
		ID:          "valid-challenge-custom-prizes",
		Description: "Challenge with ranked prizes summing to the budget",
		Expected:    OutcomeValid,
		build: func(now time.Time) domain.Campaign {
			return challengeCampaign("valid-challenge-custom-prizes", now, 1000, domain.PrizeConfig{
				Distribution: domain.DistributionCustom,
				Places: []domain.PrizePlace{
					{Position: 1, Prize: 500},
					{Position: 2, Prize: 300},
					{Position: 3, Prize: 200},
				},
			})
		},
	},
	{
		ID:               "invalid-ppv-payout-exceeds-budget",
		Description:      "Pay-per-view cap larger than the whole budget",
		Expected:         OutcomeInvalid,
		ExpectedContains: []string{"cannot exceed the total budget"},
		build: func(now time.Time) domain.Campaign {
			c := payPerViewCampaign("invalid-ppv-payout-exceeds-budget", now)
			c.TotalBudget = 400
			return c
		},
	},
	{
		ID:               "invalid-retainer-deadline-after-end",
		Description:      "Retainer accepting applications after it ends",
		Expected:         OutcomeInvalid,
		ExpectedContains: []string{"before the end date"},
		build: func(now time.Time) domain.Campaign {
			c := retainerCampaign("invalid-retainer-deadline-after-end", now)
			r := c.Details.(domain.Retainer)
			r.ApplicationDeadline = days(now, 90)
			c.Details = r
			return c
		},
	},
}

// All returns every registered scenario in registration order.
func All() []Scenario {
	return slices.Clone(registry)
}

// Lookup returns the scenario registered under id.
func Lookup(id string) (Scenario, bool) {
	i := slices.IndexFunc(registry, func(s Scenario) bool { return s.ID == id })
	if i < 0 {
		return Scenario{}, false
	}
	return registry[i], true
}
