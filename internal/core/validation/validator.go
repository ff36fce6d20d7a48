package validation

import (
	"slices"
	"time"

	"creator-campaigns/internal/core/domain"
)

// Validator applies the campaign business rules. It holds no mutable state;
// one Validator may be shared between goroutines.
type Validator struct {
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the clock used for date rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New creates a Validator using the wall clock unless WithClock is given.
func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check runs every rule that applies to c and returns all violations,
// ordered by field declaration order.
func (v *Validator) Check(c domain.Campaign) Violations {
	return v.run(c, nil, false)
}

// Validate runs full validation. It returns c when every rule passes and an
// *Error carrying all violations otherwise.
func (v *Validator) Validate(c domain.Campaign) (domain.Campaign, error) {
	if violations := v.Check(c); len(violations) > 0 {
		return domain.Campaign{}, &Error{Violations: violations}
	}
	return c, nil
}

// ValidateStep validates only the rules for the given fields, as a wizard
// step does. A field without a value reports "<field> is required". The
// returned diff lists the violations to set and the step's fields that now
// pass; merging it into the caller's error map is left to the caller (see
// FormErrors.Apply).
func (v *Validator) ValidateStep(c domain.Campaign, fields []string) Diff {
	if len(fields) == 0 {
		return Diff{}
	}
	violations := v.run(c, fields, true)

	var diff Diff
	diff.Set = violations
	for _, field := range fields {
		failed := slices.ContainsFunc(violations, func(vi Violation) bool { return vi.Field == field })
		if !failed && !slices.Contains(diff.Clear, field) {
			diff.Clear = append(diff.Clear, field)
		}
	}
	return diff
}

// run evaluates the rules for c. With a non-nil subset only rules for those
// fields run. The first failing rule of a field wins.
func (v *Validator) run(c domain.Campaign, subset []string, step bool) Violations {
	now := v.now()
	seen := make(map[string]bool)

	var out Violations
	for _, r := range rulesFor(c) {
		if seen[r.field] {
			continue
		}
		if subset != nil && !slices.Contains(subset, r.field) {
			continue
		}

		var msg string
		absent := r.present != nil && !r.present(c)
		switch {
		case absent && step:
			msg = r.field + " is required"
		case absent && r.required != "":
			msg = r.required
		case r.check != nil:
			msg = r.check(c, now)
		}
		if msg != "" {
			seen[r.field] = true
			out = append(out, Violation{Field: r.field, Message: msg})
		}
	}

	slices.SortStableFunc(out, func(a, b Violation) int {
		return fieldRank(a.Field) - fieldRank(b.Field)
	})
	return out
}

// Step names a page of the campaign creation wizard.
type Step string

const (
	StepBasics     Step = "basics"
	StepBudget     Step = "budget"
	StepDetails    Step = "details"
	StepVisibility Step = "visibility"
	StepReview     Step = "review"
)

var stepFields = map[Step][]string{
	StepBasics: {FieldType, FieldTitle, FieldDescription, FieldPlatforms},
	StepBudget: {
		FieldTotalBudget, FieldCurrency, FieldRatePerThousand, FieldMaxPayoutPerSubmission,
		FieldPrizeAmount, FieldWinnersCount, FieldPrizePool, FieldCreatorTiers,
	},
	StepDetails:    {FieldEndDate, FieldApplicationDeadline, FieldSubmissionDeadline, FieldDeliverables},
	StepVisibility: {FieldApplicationQuestions, FieldRestrictedAccess},
}

// StepFields returns the fields a wizard step validates. The review step
// covers every field; unknown steps cover none.
func StepFields(step Step) []string {
	if step == StepReview {
		return FieldOrder()
	}
	return slices.Clone(stepFields[step])
}
