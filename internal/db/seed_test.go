package db

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/scenario"
)

func TestSeedID(t *testing.T) {
	assert.Equal(t, SeedID("valid-retainer"), SeedID("valid-retainer"))
	assert.NotEqual(t, SeedID("valid-retainer"), SeedID("valid-payPerView"))
}

func TestRandomSubmissionsFitBudget(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewPCG(1, 2))

	for _, s := range scenario.All() {
		if s.Expected != scenario.OutcomeValid {
			continue
		}
		c := s.Campaign(now)
		c.ID = SeedID(s.ID)

		var total float64
		ids := map[string]bool{}
		for i := 1; i <= submissionsPerCampaign; i++ {
			sub := randomSubmission(r, c, i, now)
			require.Equal(t, c.ID, sub.CampaignID)
			assert.Contains(t, c.Platforms, sub.Platform)
			assert.False(t, sub.SubmittedDate.After(now))
			assert.GreaterOrEqual(t, sub.Views, int64(1000))
			if ppv, ok := c.Details.(domain.PayPerView); ok {
				assert.LessOrEqual(t, sub.PaymentAmount, ppv.MaxPayoutPerSubmission)
			}
			ids[sub.ID] = true
			total += sub.PaymentAmount
		}
		assert.Len(t, ids, submissionsPerCampaign, s.ID)
		assert.LessOrEqual(t, total, c.TotalBudget, s.ID)
	}

	again := randomSubmission(r, domain.Campaign{ID: "x", TotalBudget: 100}, 1, now)
	assert.Equal(t, domain.PlatformTikTok, again.Platform)
}
