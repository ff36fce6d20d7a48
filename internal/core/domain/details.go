package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Details holds the variant-specific part of a Campaign. It is sealed: only
// Retainer, PayPerView and Challenge implement it. Use MatchDetails to
// branch on the variant.
type Details interface {
	Type() CampaignType
	sealed()
}

// MatchDetails calls the function matching the variant of d and returns its
// result. A nil d yields the zero value of T. Code that branches on the
// campaign variant goes through here, so a new variant changes this
// signature and breaks every caller at compile time.
func MatchDetails[T any](
	d Details,
	onRetainer func(Retainer) T,
	onPayPerView func(PayPerView) T,
	onChallenge func(Challenge) T,
) T {
	switch v := d.(type) {
	case Retainer:
		return onRetainer(v)
	case PayPerView:
		return onPayPerView(v)
	case Challenge:
		return onChallenge(v)
	default:
		var zero T
		return zero
	}
}

// Retainer pays creators per tier for a committed volume of videos.
type Retainer struct {
	ApplicationDeadline time.Time
	// CreatorTiers are ordered ascending by price.
	CreatorTiers []CreatorTier
	Deliverables Deliverables
}

func (Retainer) Type() CampaignType { return CampaignTypeRetainer }
func (Retainer) sealed()            {}

// CreatorTier is a follower bracket and the price paid to creators in it.
type CreatorTier struct {
	Name         string  `json:"name"`
	MinFollowers int64   `json:"min_followers"`
	Price        float64 `json:"price"`
}

// DeliverablesMode selects how the required video volume is expressed.
type DeliverablesMode string

const (
	DeliverablesVideosPerDay DeliverablesMode = "videosPerDay"
	DeliverablesTotalVideos  DeliverablesMode = "totalVideos"
)

// Deliverables is the content volume a retainer creator commits to. In
// videosPerDay mode TotalVideos is derived from the cadence.
type Deliverables struct {
	Mode         DeliverablesMode `json:"mode"`
	VideosPerDay int              `json:"videos_per_day,omitempty"`
	DurationDays int              `json:"duration_days,omitempty"`
	TotalVideos  int              `json:"total_videos,omitempty"`
}

// TotalRequired returns the number of videos a creator must deliver.
func (d Deliverables) TotalRequired() int {
	if d.Mode == DeliverablesVideosPerDay {
		return d.VideosPerDay * d.DurationDays
	}
	return d.TotalVideos
}

// PayPerView pays creators per thousand views, capped per submission.
type PayPerView struct {
	RatePerThousand        float64
	MaxPayoutPerSubmission float64
}

func (PayPerView) Type() CampaignType { return CampaignTypePayPerView }
func (PayPerView) sealed()            {}

// Challenge awards a prize pool to the best submissions before a deadline.
type Challenge struct {
	SubmissionDeadline time.Time
	Prize              PrizeConfig
}

func (Challenge) Type() CampaignType { return CampaignTypeChallenge }
func (Challenge) sealed()            {}

// DistributionType selects how a challenge prize pool is split.
type DistributionType string

const (
	DistributionEqual  DistributionType = "equal"
	DistributionCustom DistributionType = "custom"
)

// PrizeConfig describes a challenge prize pool. Equal distribution uses
// PrizeAmount and WinnersCount; custom distribution uses Places.
type PrizeConfig struct {
	Distribution DistributionType
	PrizeAmount  float64
	WinnersCount int
	Places       []PrizePlace
}

// PrizePlace is the prize for a 1-based finishing position.
type PrizePlace struct {
	Position int     `json:"position"`
	Prize    float64 `json:"prize"`
}

// Total returns the amount the prize pool pays out in full.
func (p PrizeConfig) Total() float64 {
	return p.TotalDecimal().InexactFloat64()
}

// TotalDecimal is Total without float rounding, for budget comparisons.
// Non-finite amounts count as 0.
func (p PrizeConfig) TotalDecimal() decimal.Decimal {
	if p.Distribution == DistributionCustom {
		sum := decimal.Zero
		for _, place := range p.Places {
			sum = sum.Add(Amount(place.Prize))
		}
		return sum
	}
	return Amount(p.PrizeAmount).Mul(decimal.NewFromInt(int64(p.WinnersCount)))
}

// Finite reports whether f is neither NaN nor an infinity.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Amount converts a money value to a decimal. NaN and infinities, which
// decimal cannot represent, become 0.
func Amount(f float64) decimal.Decimal {
	if !Finite(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
