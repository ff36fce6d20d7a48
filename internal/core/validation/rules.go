package validation

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"creator-campaigns/internal/core/domain"
)

// Form field names used as error keys.
const (
	FieldType                   = "type"
	FieldTitle                  = "title"
	FieldDescription            = "description"
	FieldTotalBudget            = "totalBudget"
	FieldCurrency               = "currency"
	FieldPlatforms              = "platforms"
	FieldEndDate                = "endDate"
	FieldApplicationDeadline    = "applicationDeadline"
	FieldDeliverables           = "deliverables"
	FieldCreatorTiers           = "creatorTiers"
	FieldRatePerThousand        = "ratePerThousand"
	FieldMaxPayoutPerSubmission = "maxPayoutPerSubmission"
	FieldSubmissionDeadline     = "submissionDeadline"
	FieldPrizeAmount            = "prizeAmount"
	FieldWinnersCount           = "winnersCount"
	FieldPrizePool              = "prizePool"
	FieldApplicationQuestions   = "applicationQuestions"
	FieldRestrictedAccess       = "restrictedAccess"
)

var fieldOrder = []string{
	FieldType,
	FieldTitle,
	FieldDescription,
	FieldTotalBudget,
	FieldCurrency,
	FieldPlatforms,
	FieldEndDate,
	FieldApplicationDeadline,
	FieldDeliverables,
	FieldCreatorTiers,
	FieldRatePerThousand,
	FieldMaxPayoutPerSubmission,
	FieldSubmissionDeadline,
	FieldPrizeAmount,
	FieldWinnersCount,
	FieldPrizePool,
	FieldApplicationQuestions,
	FieldRestrictedAccess,
}

// FieldOrder returns every validated field in declaration order. The first
// violated field in this order is the one surfaced to the user.
func FieldOrder() []string {
	return slices.Clone(fieldOrder)
}

func fieldRank(field string) int {
	if i := slices.Index(fieldOrder, field); i >= 0 {
		return i
	}
	return len(fieldOrder)
}

const (
	minTitleLength       = 3
	minDescriptionLength = 10
)

// rule checks one field. present reports whether the field has a value at
// all. An absent field fails with required in full validation, or goes on to
// check when required is empty; step validation reports it as
// "<field> is required". check returns "" when the value is acceptable.
type rule struct {
	field    string
	present  func(domain.Campaign) bool
	required string
	check    func(c domain.Campaign, now time.Time) string
}

// variantRule builds a rule that reads the campaign's variant details. The
// rule sets are picked through MatchDetails in rulesFor, so D always matches.
func variantRule[D domain.Details](field string, present func(D) bool, required string, check func(domain.Campaign, D, time.Time) string) rule {
	r := rule{field: field, required: required}
	if present != nil {
		r.present = func(c domain.Campaign) bool {
			d, _ := c.Details.(D)
			return present(d)
		}
	}
	if check != nil {
		r.check = func(c domain.Campaign, now time.Time) string {
			d, _ := c.Details.(D)
			return check(c, d, now)
		}
	}
	return r
}

// rulesFor returns the rules that apply to c in declaration order. A draft
// without a type only gets the common rules.
func rulesFor(c domain.Campaign) []rule {
	rules := slices.Clone(commonRules)
	rules = append(rules, domain.MatchDetails(c.Details,
		func(domain.Retainer) []rule { return retainerRules },
		func(domain.PayPerView) []rule { return payPerViewRules },
		func(domain.Challenge) []rule { return challengeRules },
	)...)
	return append(rules, visibilityRules...)
}

var commonRules = []rule{
	{
		field:    FieldType,
		present:  func(c domain.Campaign) bool { return c.Details != nil },
		required: "Campaign type is required",
	},
	{
		field:    FieldTitle,
		present:  func(c domain.Campaign) bool { return strings.TrimSpace(c.Title) != "" },
		required: "Title is required",
		check: func(c domain.Campaign, _ time.Time) string {
			if utf8.RuneCountInString(strings.TrimSpace(c.Title)) < minTitleLength {
				return "Title must be at least 3 characters"
			}
			return ""
		},
	},
	{
		field:    FieldDescription,
		present:  func(c domain.Campaign) bool { return strings.TrimSpace(c.Description) != "" },
		required: "Description is required",
		check: func(c domain.Campaign, _ time.Time) string {
			if utf8.RuneCountInString(strings.TrimSpace(c.Description)) < minDescriptionLength {
				return "Description must be at least 10 characters"
			}
			return ""
		},
	},
	{
		field:   FieldTotalBudget,
		present: func(c domain.Campaign) bool { return c.TotalBudget != 0 },
		check: func(c domain.Campaign, _ time.Time) string {
			if !domain.Finite(c.TotalBudget) {
				return "Total budget must be a finite number"
			}
			if c.TotalBudget <= 0 {
				return "Total budget is below the minimum budget: it must be greater than 0"
			}
			return ""
		},
	},
	{
		field: FieldCurrency,
		check: func(c domain.Campaign, _ time.Time) string {
			if c.Currency == "" {
				return ""
			}
			if _, ok := domain.ParseCurrency(c.Currency); !ok {
				return "Currency must be a valid ISO 4217 code"
			}
			return ""
		},
	},
	{
		field:    FieldPlatforms,
		present:  func(c domain.Campaign) bool { return len(c.Platforms) > 0 },
		required: "At least one platform is required",
	},
	{
		field:    FieldEndDate,
		present:  func(c domain.Campaign) bool { return !c.EndDate.IsZero() },
		required: "End date is required",
		check: func(c domain.Campaign, now time.Time) string {
			if !c.EndDate.After(now) {
				return "End date must be in the future"
			}
			return ""
		},
	},
}

var retainerRules = []rule{
	variantRule(FieldPlatforms, nil, "",
		func(c domain.Campaign, _ domain.Retainer, _ time.Time) string {
			if len(c.Platforms) != 1 {
				return "Retainer campaigns must have exactly one platform"
			}
			return ""
		}),
	variantRule(FieldApplicationDeadline,
		func(d domain.Retainer) bool { return !d.ApplicationDeadline.IsZero() },
		"Application deadline is required for retainer campaigns",
		func(c domain.Campaign, d domain.Retainer, _ time.Time) string {
			return deadlineBeforeEnd(c, d.ApplicationDeadline, "Application deadline")
		}),
	variantRule(FieldDeliverables, nil, "",
		func(_ domain.Campaign, d domain.Retainer, _ time.Time) string {
			del := d.Deliverables
			if del.Mode == domain.DeliverablesVideosPerDay && (del.VideosPerDay < 0 || del.DurationDays < 0) {
				return "Videos per day and duration cannot be negative"
			}
			if del.Mode != domain.DeliverablesVideosPerDay && del.TotalVideos < 0 {
				return "Total videos cannot be negative"
			}
			return ""
		}),
	variantRule(FieldCreatorTiers, nil, "",
		func(_ domain.Campaign, d domain.Retainer, _ time.Time) string {
			for i, tier := range d.CreatorTiers {
				if !domain.Finite(tier.Price) || tier.Price <= 0 {
					return "Every creator tier needs a price greater than 0"
				}
				if i > 0 && tier.Price < d.CreatorTiers[i-1].Price {
					return "Creator tiers must be ordered by ascending price"
				}
			}
			return ""
		}),
}

var payPerViewRules = []rule{
	variantRule(FieldRatePerThousand,
		func(d domain.PayPerView) bool { return d.RatePerThousand != 0 }, "",
		func(_ domain.Campaign, d domain.PayPerView, _ time.Time) string {
			if !domain.Finite(d.RatePerThousand) || d.RatePerThousand <= 0 {
				return "Rate per 1,000 views must be greater than 0"
			}
			return ""
		}),
	variantRule(FieldMaxPayoutPerSubmission,
		func(d domain.PayPerView) bool { return d.MaxPayoutPerSubmission != 0 }, "",
		func(c domain.Campaign, d domain.PayPerView, _ time.Time) string {
			if !domain.Finite(d.MaxPayoutPerSubmission) || d.MaxPayoutPerSubmission <= 0 {
				return "Max payout per submission must be greater than 0"
			}
			if d.MaxPayoutPerSubmission > c.TotalBudget {
				return "Max payout per submission cannot exceed the total budget"
			}
			return ""
		}),
}

var challengeRules = []rule{
	variantRule(FieldSubmissionDeadline,
		func(d domain.Challenge) bool { return !d.SubmissionDeadline.IsZero() },
		"Submission deadline is required for challenge campaigns",
		func(c domain.Campaign, d domain.Challenge, _ time.Time) string {
			return deadlineBeforeEnd(c, d.SubmissionDeadline, "Submission deadline")
		}),
	variantRule(FieldPrizeAmount,
		func(d domain.Challenge) bool { return d.Prize.Distribution == domain.DistributionCustom || d.Prize.PrizeAmount != 0 }, "",
		func(_ domain.Campaign, d domain.Challenge, _ time.Time) string {
			if d.Prize.Distribution == domain.DistributionCustom {
				return ""
			}
			if !domain.Finite(d.Prize.PrizeAmount) {
				return "Prize amount must be a finite number"
			}
			if d.Prize.PrizeAmount < 0 {
				return "Prize amount cannot be negative"
			}
			return ""
		}),
	variantRule(FieldWinnersCount,
		func(d domain.Challenge) bool { return d.Prize.Distribution == domain.DistributionCustom || d.Prize.WinnersCount != 0 }, "",
		func(_ domain.Campaign, d domain.Challenge, _ time.Time) string {
			if d.Prize.Distribution != domain.DistributionCustom && d.Prize.WinnersCount < 0 {
				return "Winners count cannot be negative"
			}
			return ""
		}),
	variantRule(FieldPrizePool, nil, "",
		func(c domain.Campaign, d domain.Challenge, _ time.Time) string {
			if d.Prize.Distribution == domain.DistributionCustom {
				if msg := checkPlaces(d.Prize.Places); msg != "" {
					return msg
				}
			}
			// Non-finite amounts are reported on their own fields.
			if !domain.Finite(c.TotalBudget) {
				return ""
			}
			if d.Prize.TotalDecimal().GreaterThan(domain.Amount(c.TotalBudget)) {
				return "Total prize pool exceeds budget"
			}
			return ""
		}),
}

func checkPlaces(places []domain.PrizePlace) string {
	if len(places) == 0 {
		return "At least one prize place is required"
	}
	seen := make(map[int]bool, len(places))
	for _, p := range places {
		if p.Position < 1 || seen[p.Position] {
			return "Prize positions must be unique and start at 1"
		}
		seen[p.Position] = true
		if !domain.Finite(p.Prize) || p.Prize <= 0 {
			return "Every prize must be greater than 0"
		}
	}
	return ""
}

var visibilityRules = []rule{
	{
		field: FieldApplicationQuestions,
		check: func(c domain.Campaign, _ time.Time) string {
			if c.Visibility.Kind != domain.VisibilityApplicationOnly {
				return ""
			}
			if len(c.Visibility.Questions) == 0 {
				return "Application-only campaigns need at least one question"
			}
			for _, q := range c.Visibility.Questions {
				if strings.TrimSpace(q.Question) == "" {
					return "Every application question needs text"
				}
			}
			return ""
		},
	},
	{
		field: FieldRestrictedAccess,
		check: func(c domain.Campaign, _ time.Time) string {
			if c.Visibility.Kind != domain.VisibilityRestricted {
				return ""
			}
			access := c.Visibility.Restricted
			switch {
			case access == nil:
				return "Restricted campaigns need offers or an invite link"
			case access.Mode == domain.RestrictedInviteLink && strings.TrimSpace(access.InviteLink) == "":
				return "Invite link is required"
			case access.Mode != domain.RestrictedInviteLink && len(access.OfferIDs) == 0:
				return "Select at least one offer"
			}
			return ""
		},
	},
}

func deadlineBeforeEnd(c domain.Campaign, deadline time.Time, label string) string {
	if c.EndDate.IsZero() {
		return ""
	}
	if !deadline.Before(c.EndDate) {
		return label + " must be before the end date"
	}
	return ""
}
