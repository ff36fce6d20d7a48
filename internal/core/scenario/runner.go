package scenario

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/validation"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// ValidateFunc performs full validation of a campaign. A nil error means the
// campaign is valid.
type ValidateFunc func(domain.Campaign) error

// Result is the outcome of running one scenario.
type Result struct {
	ID       string   `json:"id"`
	Passed   bool     `json:"passed"`
	Details  string   `json:"details"`
	Messages []string `json:"messages,omitempty"`
}

// Report aggregates the results of every registered scenario.
type Report struct {
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Total   int      `json:"total"`
	Results []Result `json:"results"`
}

// Run validates the scenario registered under id and compares the outcome
// with the expected one.
func Run(id string, validate ValidateFunc, now time.Time) (Result, error) {
	s, ok := Lookup(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	return run(s, validate, now), nil
}

// RunAll runs every registered scenario in registration order.
func RunAll(validate ValidateFunc, now time.Time) Report {
	report := Report{Results: make([]Result, 0, len(registry))}
	for _, s := range registry {
		res := run(s, validate, now)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	report.Total = len(report.Results)
	return report
}

func run(s Scenario, validate ValidateFunc, now time.Time) Result {
	err := validate(s.Campaign(now))
	res := Result{ID: s.ID, Messages: messages(err)}

	switch {
	case s.Expected == OutcomeValid && err == nil:
		res.Passed = true
		res.Details = "valid as expected"
	case s.Expected == OutcomeValid:
		res.Details = "expected valid, got: " + strings.Join(res.Messages, "; ")
	case err == nil:
		res.Details = "expected invalid, campaign passed validation"
	default:
		var missing []string
		for _, want := range s.ExpectedContains {
			if !anyContains(res.Messages, want) {
				missing = append(missing, want)
			}
		}
		if len(missing) > 0 {
			res.Details = fmt.Sprintf("invalid, but no error mentions %q", missing)
			break
		}
		res.Passed = true
		res.Details = "invalid as expected"
	}
	return res
}

// messages flattens a validation failure into its messages. Errors of
// other kinds contribute their text as a single message.
func messages(err error) []string {
	if err == nil {
		return nil
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr.Violations.Messages()
	}
	return []string{err.Error()}
}

func anyContains(msgs []string, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}
