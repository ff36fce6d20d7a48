package normalize

import (
	"encoding/json"
	"time"

	"creator-campaigns/internal/core/domain"
)

// Encode converts c into a persisted record using canonical enum values,
// RFC 3339 UTC dates and JSON text for nested fields. Decoding the result
// with Campaign yields c again for any campaign built from canonical values.
func Encode(c domain.Campaign) Record {
	r := Record{
		"id":                   c.ID,
		"type":                 string(c.Type()),
		"title":                c.Title,
		"description":          c.Description,
		"currency":             c.Currency,
		"total_budget":         c.TotalBudget,
		"end_date":             formatTime(c.EndDate),
		"platforms":            encodeJSON(c.Platforms),
		"content_type":         string(c.ContentType),
		"category":             c.Category,
		"country_availability": string(c.CountryAvailability),
		"visibility":           string(c.Visibility.Kind),
		"status":               string(c.Status),
		"guidelines":           encodeJSON(c.Guidelines),
	}
	setIf(r, "brand_id", c.BrandID)
	setIf(r, "banner_image", c.BannerImage)
	setIf(r, "tracking_link", c.TrackingLink)
	if c.Brief != nil {
		r["brief"] = encodeJSON(c.Brief)
	}
	if c.TikTokShopCommission != nil {
		r["tiktok_shop_commission"] = encodeJSON(c.TikTokShopCommission)
	}
	if c.ExampleVideos != nil {
		r["example_videos"] = encodeJSON(c.ExampleVideos)
	}
	if c.Visibility.Questions != nil {
		r["application_questions"] = encodeJSON(c.Visibility.Questions)
	}
	if c.Visibility.Restricted != nil {
		r["restricted_access"] = encodeJSON(c.Visibility.Restricted)
	}

	domain.MatchDetails(c.Details,
		func(d domain.Retainer) struct{} {
			setIf(r, "application_deadline", formatTime(d.ApplicationDeadline))
			if d.CreatorTiers != nil {
				r["creator_tiers"] = encodeJSON(d.CreatorTiers)
			}
			if d.Deliverables.Mode != "" {
				r["deliverables"] = encodeJSON(d.Deliverables)
			}
			return struct{}{}
		},
		func(d domain.PayPerView) struct{} {
			r["rate_per_thousand"] = d.RatePerThousand
			r["max_payout_per_submission"] = d.MaxPayoutPerSubmission
			return struct{}{}
		},
		func(d domain.Challenge) struct{} {
			setIf(r, "submission_deadline", formatTime(d.SubmissionDeadline))
			r["prize_pool"] = encodeJSON(prizePoolJSON{
				DistributionType: string(d.Prize.Distribution),
				PrizeAmount:      d.Prize.PrizeAmount,
				WinnersCount:     d.Prize.WinnersCount,
				Places:           d.Prize.Places,
			})
			return struct{}{}
		},
	)
	return r
}

type prizePoolJSON struct {
	DistributionType string              `json:"distribution_type"`
	PrizeAmount      float64             `json:"prize_amount,omitempty"`
	WinnersCount     int                 `json:"winners_count,omitempty"`
	Places           []domain.PrizePlace `json:"places,omitempty"`
}

// EncodeSubmission converts s into a flat submission record.
func EncodeSubmission(s domain.Submission) Record {
	r := Record{
		"id":             s.ID,
		"creator_id":     s.CreatorID,
		"campaign_id":    s.CampaignID,
		"platform":       string(s.Platform),
		"views":          s.Views,
		"payment_amount": s.PaymentAmount,
		"status":         string(s.Status),
	}
	setIf(r, "submitted_date", formatTime(s.SubmittedDate))
	setIf(r, "video_url", s.VideoURL)
	return r
}

func setIf(r Record, key, value string) {
	if value != "" {
		r[key] = value
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
