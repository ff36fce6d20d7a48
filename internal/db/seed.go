package db

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"creator-campaigns/internal/adapter/postgres"
	"creator-campaigns/internal/core/domain"
	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/scenario"
)

const submissionsPerCampaign = 8

var seedStatuses = []domain.SubmissionStatus{
	domain.SubmissionPending,
	domain.SubmissionApproved,
	domain.SubmissionApproved,
	domain.SubmissionPaid,
	domain.SubmissionDenied,
}

// SeedID derives a stable campaign id from a scenario id so reseeding
// updates the same rows.
func SeedID(scenarioID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("campaign:"+scenarioID)).String()
}

// Seed stores every valid scenario campaign as an active campaign and adds
// random submissions to each. Campaigns are upserted; submissions that
// already exist are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	repo := postgres.NewCampaignRepository(db)
	now := time.Now().UTC()

	for _, s := range scenario.All() {
		if s.Expected != scenario.OutcomeValid {
			continue
		}
		c := s.Campaign(now)
		c.ID = SeedID(s.ID)
		c.Status = domain.CampaignStatusActive
		if err := repo.SaveCampaignRecord(ctx, normalize.Encode(c)); err != nil {
			return fmt.Errorf("seed campaign %s: %w", s.ID, err)
		}

		for i := 1; i <= submissionsPerCampaign; i++ {
			sub := randomSubmission(r, c, i, now)
			_, err := db.Exec(ctx, `INSERT INTO submissions
(id, campaign_id, creator_id, platform, submitted_date, views, payment_amount, status, video_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now()) ON CONFLICT DO NOTHING`,
				sub.ID, sub.CampaignID, sub.CreatorID, string(sub.Platform), sub.SubmittedDate,
				sub.Views, sub.PaymentAmount, string(sub.Status), sub.VideoURL)
			if err != nil {
				return fmt.Errorf("seed submission %s: %w", sub.ID, err)
			}
		}
	}
	return nil
}

// randomSubmission builds the n-th submission of c. Payments stay small
// enough that all seeded submissions together fit in the budget.
func randomSubmission(r *rand.Rand, c domain.Campaign, n int, now time.Time) domain.Submission {
	views := int64(1000 + r.IntN(50000))
	payment := c.TotalBudget / (2 * submissionsPerCampaign)
	if ppv, ok := c.Details.(domain.PayPerView); ok {
		payment = math.Min(float64(views)/1000*ppv.RatePerThousand, ppv.MaxPayoutPerSubmission)
		payment = math.Min(payment, c.TotalBudget/(2*submissionsPerCampaign))
	}

	platform := domain.PlatformTikTok
	if len(c.Platforms) > 0 {
		platform = c.Platforms[r.IntN(len(c.Platforms))]
	}

	id := uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "submission:%s:%d", c.ID, n)).String()
	return domain.Submission{
		ID:            id,
		CreatorID:     fmt.Sprintf("creator-%d", r.IntN(4)+1),
		CampaignID:    c.ID,
		Platform:      platform,
		SubmittedDate: now.Add(-time.Duration(r.IntN(72)) * time.Hour),
		Views:         views,
		PaymentAmount: math.Round(payment*100) / 100,
		Status:        seedStatuses[r.IntN(len(seedStatuses))],
		VideoURL:      fmt.Sprintf("https://example.com/video/%s.mp4", id),
	}
}
