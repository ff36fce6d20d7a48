package scenario

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/validation"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validate() ValidateFunc {
	v := validation.New(validation.WithClock(func() time.Time { return now }))
	return func(c domain.Campaign) error {
		_, err := v.Validate(c)
		return err
	}
}

func TestRunAllPassesWithValidator(t *testing.T) {
	report := RunAll(validate(), now)
	for _, res := range report.Results {
		assert.True(t, res.Passed, "%s: %s", res.ID, res.Details)
	}
	assert.Equal(t, len(All()), report.Total)
	assert.Equal(t, report.Total, report.Passed)
	assert.Zero(t, report.Failed)
}

func TestRegistryFixtures(t *testing.T) {
	for _, id := range []string{
		"valid-retainer",
		"valid-payPerView",
		"valid-challenge",
		"invalid-missing-title",
		"invalid-past-date",
		"invalid-budget-zero",
		"invalid-retainer-multiple-platforms",
		"invalid-challenge-prize-exceeds-budget",
	} {
		_, ok := Lookup(id)
		assert.True(t, ok, id)
	}

	s, _ := Lookup("valid-retainer")
	c := s.Campaign(now)
	assert.Equal(t, "Fashion Brand Retainer", c.Title)
	assert.Equal(t, domain.CampaignTypeRetainer, c.Type())
	assert.Equal(t, []domain.Platform{domain.PlatformTikTok}, c.Platforms)
	assert.Equal(t, 5000.0, c.TotalBudget)
	assert.Equal(t, now.AddDate(0, 0, 14), c.Details.(domain.Retainer).ApplicationDeadline)
	assert.Equal(t, now.AddDate(0, 0, 60), c.EndDate)

	s, _ = Lookup("invalid-challenge-prize-exceeds-budget")
	c = s.Campaign(now)
	assert.Equal(t, 1500.0, c.Details.(domain.Challenge).Prize.Total())
	assert.Equal(t, 1000.0, c.TotalBudget)
}

func TestRunDetectsWrongOutcome(t *testing.T) {
	acceptAll := func(domain.Campaign) error { return nil }
	res, err := Run("invalid-budget-zero", acceptAll, now)
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, "expected invalid, campaign passed validation", res.Details)

	rejectAll := func(domain.Campaign) error { return errors.New("nope") }
	res, err = Run("valid-challenge", rejectAll, now)
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Details, "nope")

	report := RunAll(acceptAll, now)
	assert.Equal(t, 4, report.Passed, "only the valid scenarios pass")
	assert.Equal(t, report.Total-4, report.Failed)
}

func TestRunChecksExpectedSubstrings(t *testing.T) {
	wrongMessage := func(domain.Campaign) error {
		return &validation.Error{Violations: validation.Violations{{Field: "title", Message: "something else"}}}
	}
	res, err := Run("invalid-missing-title", wrongMessage, now)
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, []string{"something else"}, res.Messages)
}

func TestRunUnknownScenario(t *testing.T) {
	_, err := Run("does-not-exist", validate(), now)
	assert.ErrorIs(t, err, ErrUnknownScenario)
}
