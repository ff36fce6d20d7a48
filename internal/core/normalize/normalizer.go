package normalize

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"creator-campaigns/internal/core/domain"
)

var (
	// ErrMissingType is returned for a record without a type discriminator.
	ErrMissingType = errors.New("campaign type is missing")
	// ErrUnknownType is returned for a type no variant matches.
	ErrUnknownType = errors.New("campaign type is not recognized")
	// ErrInvalidDate is returned when a date a campaign cannot exist
	// without is missing or unparseable.
	ErrInvalidDate = errors.New("campaign date is missing or invalid")
)

// FallbackObserver is told about every value the normalizer replaced with a
// default: an unrecognized enum spelling, malformed nested JSON or a number
// that did not parse.
type FallbackObserver func(field string, raw any)

// Normalizer turns persisted records into canonical domain values. It keeps
// no state between calls and is safe for concurrent use.
type Normalizer struct {
	logger   *slog.Logger
	observer FallbackObserver
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger logs every fallback at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) { n.logger = logger }
}

// WithFallbackObserver registers fn to be called for every fallback.
func WithFallbackObserver(fn FallbackObserver) Option {
	return func(n *Normalizer) { n.observer = fn }
}

// New creates a Normalizer. Without options fallbacks are silent.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) fallback(id, field string, raw any, err error) {
	attrs := []any{slog.String("record_id", id), slog.String("field", field), slog.Any("value", raw)}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	n.logger.Warn("normalize: value replaced by default", attrs...)
	if n.observer != nil {
		n.observer(field, raw)
	}
}

// Campaign converts r into a canonical Campaign. Unrecognized enum values and
// malformed nested JSON degrade to documented defaults. A record without a
// usable type or end date cannot become a campaign and returns an error
// wrapping ErrMissingType, ErrUnknownType or ErrInvalidDate.
func (n *Normalizer) Campaign(r Record) (domain.Campaign, error) {
	return n.campaign(r, true)
}

// Draft converts a record still being filled in by the creation wizard. A
// missing type or end date is left empty for the validator to report, and
// an unknown type is treated as missing. Dates that are present but do not
// parse are still an error.
func (n *Normalizer) Draft(r Record) (domain.Campaign, error) {
	return n.campaign(r, false)
}

func (n *Normalizer) campaign(r Record, strict bool) (domain.Campaign, error) {
	id := r.String("id")

	rawType := r.String("type")
	typ, known := campaignTypes.lookup(rawType)
	switch {
	case rawType == "" && strict:
		return domain.Campaign{}, fmt.Errorf("campaign %q: %w", id, ErrMissingType)
	case rawType != "" && !known && strict:
		return domain.Campaign{}, fmt.Errorf("campaign %q: %w: %q", id, ErrUnknownType, rawType)
	case rawType != "" && !known:
		n.fallback(id, campaignTypes.field, rawType, nil)
	}

	endDate, present, err := r.Time("end_date")
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %q: %w: %w", id, ErrInvalidDate, err)
	}
	if !present && strict {
		return domain.Campaign{}, fmt.Errorf("campaign %q: %w: end_date is missing", id, ErrInvalidDate)
	}

	c := domain.Campaign{
		ID:                  id,
		BrandID:             r.String("brand_id"),
		Title:               r.String("title"),
		Description:         r.String("description"),
		Currency:            n.currency(id, r),
		TotalBudget:         n.float(id, r, "total_budget"),
		EndDate:             endDate,
		Platforms:           n.platforms(id, r),
		ContentType:         lookupEnum(n, id, contentTypes, r.String("content_type")),
		Category:            r.String("category"),
		CountryAvailability: lookupEnum(n, id, countries, r.String("country_availability")),
		Status:              lookupEnum(n, id, campaignStatuses, r.String("status")),
		BannerImage:         r.String("banner_image"),
		TrackingLink:        r.String("tracking_link"),
	}
	c.Visibility = n.visibility(id, r)

	c.Guidelines = decodeField[domain.Guidelines](n, id, r, "guidelines").OrDefault(domain.Guidelines{})
	if brief := decodeField[domain.Brief](n, id, r, "brief"); brief.Err == nil {
		c.Brief = &brief.Value
	}
	if commission := decodeField[domain.ShopCommission](n, id, r, "tiktok_shop_commission"); commission.Err == nil {
		c.TikTokShopCommission = &commission.Value
	}
	c.ExampleVideos = decodeField[[]string](n, id, r, "example_videos").OrDefault(nil)

	switch typ {
	case domain.CampaignTypeRetainer:
		c.Details, err = n.retainer(id, r)
	case domain.CampaignTypePayPerView:
		c.Details = domain.PayPerView{
			RatePerThousand:        n.float(id, r, "rate_per_thousand"),
			MaxPayoutPerSubmission: n.float(id, r, "max_payout_per_submission"),
		}
	case domain.CampaignTypeChallenge:
		c.Details, err = n.challenge(id, r)
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

func (n *Normalizer) retainer(id string, r Record) (domain.Retainer, error) {
	deadline, err := optionalTime(id, r, "application_deadline")
	if err != nil {
		return domain.Retainer{}, err
	}

	tiers := decodeField[[]domain.CreatorTier](n, id, r, "creator_tiers").OrDefault(nil)
	slices.SortStableFunc(tiers, func(a, b domain.CreatorTier) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		default:
			return 0
		}
	})

	type rawDeliverables struct {
		Mode         string `json:"mode"`
		VideosPerDay int    `json:"videos_per_day"`
		DurationDays int    `json:"duration_days"`
		TotalVideos  int    `json:"total_videos"`
	}
	var d domain.Deliverables
	if raw := decodeField[rawDeliverables](n, id, r, "deliverables"); raw.Err == nil {
		mode := raw.Value.Mode
		if mode == "" && raw.Value.VideosPerDay > 0 {
			mode = string(domain.DeliverablesVideosPerDay)
		}
		d = domain.Deliverables{
			Mode:         lookupEnum(n, id, deliverablesModes, mode),
			VideosPerDay: raw.Value.VideosPerDay,
			DurationDays: raw.Value.DurationDays,
			TotalVideos:  raw.Value.TotalVideos,
		}
		if d.Mode == domain.DeliverablesVideosPerDay {
			d.TotalVideos = d.TotalRequired()
		}
	}

	return domain.Retainer{ApplicationDeadline: deadline, CreatorTiers: tiers, Deliverables: d}, nil
}

func (n *Normalizer) challenge(id string, r Record) (domain.Challenge, error) {
	deadline, err := optionalTime(id, r, "submission_deadline")
	if err != nil {
		return domain.Challenge{}, err
	}

	type rawPrizePool struct {
		DistributionType string              `json:"distribution_type"`
		PrizeAmount      float64             `json:"prize_amount"`
		WinnersCount     int                 `json:"winners_count"`
		Places           []domain.PrizePlace `json:"places"`
	}
	var prize domain.PrizeConfig
	if raw := decodeField[rawPrizePool](n, id, r, "prize_pool"); raw.Err == nil {
		dist := raw.Value.DistributionType
		if dist == "" && len(raw.Value.Places) > 0 {
			dist = string(domain.DistributionCustom)
		}
		prize = domain.PrizeConfig{
			Distribution: lookupEnum(n, id, distributionTypes, dist),
			PrizeAmount:  raw.Value.PrizeAmount,
			WinnersCount: raw.Value.WinnersCount,
			Places:       raw.Value.Places,
		}
	}

	return domain.Challenge{SubmissionDeadline: deadline, Prize: prize}, nil
}

func (n *Normalizer) visibility(id string, r Record) domain.Visibility {
	v := domain.Visibility{Kind: lookupEnum(n, id, visibilities, r.String("visibility"))}

	switch v.Kind {
	case domain.VisibilityApplicationOnly:
		type rawQuestion struct {
			ID         string `json:"id"`
			Question   string `json:"question"`
			AnswerType string `json:"answer_type"`
			Required   bool   `json:"required"`
		}
		raw := decodeField[[]rawQuestion](n, id, r, "application_questions").OrDefault(nil)
		for i, q := range raw {
			question := domain.ApplicationQuestion{
				ID:         q.ID,
				Question:   strings.TrimSpace(q.Question),
				AnswerType: lookupEnum(n, id, answerTypes, q.AnswerType),
				Required:   q.Required,
			}
			if question.ID == "" {
				question.ID = questionID(id, i)
			}
			v.Questions = append(v.Questions, question)
		}
	case domain.VisibilityRestricted:
		type rawAccess struct {
			Mode       string   `json:"mode"`
			OfferIDs   []string `json:"offer_ids"`
			InviteLink string   `json:"invite_link"`
		}
		raw := decodeField[rawAccess](n, id, r, "restricted_access")
		if raw.Err != nil {
			break
		}
		mode := raw.Value.Mode
		if mode == "" && raw.Value.InviteLink != "" && len(raw.Value.OfferIDs) == 0 {
			mode = string(domain.RestrictedInviteLink)
		}
		v.Restricted = &domain.RestrictedAccess{
			Mode:       lookupEnum(n, id, restrictedModes, mode),
			OfferIDs:   raw.Value.OfferIDs,
			InviteLink: strings.TrimSpace(raw.Value.InviteLink),
		}
	}
	return v
}

// questionID derives a stable id for a question stored without one, so
// normalizing the same record twice yields the same campaign.
func questionID(campaignID string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("campaign:%s/question:%d", campaignID, index))).String()
}

func (n *Normalizer) platforms(id string, r Record) []domain.Platform {
	key := "platforms"
	if !r.Has(key) && r.Has("platform") {
		key = "platform"
	}
	raw, ok := r.Strings(key)
	if !ok {
		n.fallback(id, key, r[key], nil)
		return nil
	}

	var out []domain.Platform
	for _, s := range raw {
		p := lookupEnum(n, id, platforms, s)
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func (n *Normalizer) currency(id string, r Record) string {
	raw := r.String("currency")
	unit, ok := domain.ParseCurrency(raw)
	if !ok && raw != "" {
		n.fallback(id, "currency", raw, nil)
	}
	return unit.String()
}

func (n *Normalizer) float(id string, r Record, key string) float64 {
	f, ok := r.Float(key)
	if !ok {
		n.fallback(id, key, r[key], nil)
	}
	return f
}

// lookupEnum resolves raw through table, reporting the fallback when raw was
// not recognized. An empty value takes the default without a report.
func lookupEnum[T ~string](n *Normalizer, id string, table enumTable[T], raw string) T {
	v, ok := table.lookup(raw)
	if !ok && strings.TrimSpace(raw) != "" {
		n.fallback(id, table.field, raw, nil)
	}
	return v
}

// decodeField decodes a nested field, reporting malformed values. Absent
// values are expected and not reported.
func decodeField[T any](n *Normalizer, id string, r Record, key string) Result[T] {
	res := Decode[T](r[key])
	if res.Malformed() {
		n.fallback(id, key, r[key], res.Err)
	}
	return res
}

func optionalTime(id string, r Record, key string) (time.Time, error) {
	t, _, err := r.Time(key)
	if err != nil {
		return time.Time{}, fmt.Errorf("campaign %q: %w: %w", id, ErrInvalidDate, err)
	}
	return t, nil
}

// Submission converts a flat submission record. Unknown statuses and
// platforms take their defaults; negative views or payments clamp to zero.
func (n *Normalizer) Submission(r Record) (domain.Submission, error) {
	id := r.String("id")
	submitted, _, err := r.Time("submitted_date")
	if err != nil {
		return domain.Submission{}, fmt.Errorf("submission %q: %w", id, err)
	}

	s := domain.Submission{
		ID:            id,
		CreatorID:     r.String("creator_id"),
		CampaignID:    r.String("campaign_id"),
		Platform:      lookupEnum(n, id, platforms, r.String("platform")),
		SubmittedDate: submitted,
		Status:        lookupEnum(n, id, submissionStatuses, r.String("status")),
		VideoURL:      r.String("video_url"),
	}

	views := n.float(id, r, "views")
	if views < 0 {
		n.fallback(id, "views", r["views"], nil)
		views = 0
	}
	s.Views = int64(math.Round(views))

	s.PaymentAmount = n.float(id, r, "payment_amount")
	if s.PaymentAmount < 0 {
		n.fallback(id, "payment_amount", r["payment_amount"], nil)
		s.PaymentAmount = 0
	}
	return s, nil
}
