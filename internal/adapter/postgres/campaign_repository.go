package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creator-campaigns/internal/core/normalize"
	"creator-campaigns/internal/core/port"
)

type columnKind int

const (
	kindText columnKind = iota
	kindNumber
	kindTime
	kindJSON
)

type column struct {
	name string
	kind columnKind
}

// campaignColumns lists the stored campaign fields. Their names are the
// record keys the normalizer reads.
var campaignColumns = []column{
	{"id", kindText},
	{"brand_id", kindText},
	{"type", kindText},
	{"title", kindText},
	{"description", kindText},
	{"currency", kindText},
	{"total_budget", kindNumber},
	{"end_date", kindTime},
	{"platforms", kindJSON},
	{"content_type", kindText},
	{"category", kindText},
	{"country_availability", kindText},
	{"visibility", kindText},
	{"status", kindText},
	{"banner_image", kindText},
	{"tracking_link", kindText},
	{"guidelines", kindJSON},
	{"brief", kindJSON},
	{"tiktok_shop_commission", kindJSON},
	{"example_videos", kindJSON},
	{"application_deadline", kindTime},
	{"creator_tiers", kindJSON},
	{"deliverables", kindJSON},
	{"rate_per_thousand", kindNumber},
	{"max_payout_per_submission", kindNumber},
	{"submission_deadline", kindTime},
	{"prize_pool", kindJSON},
	{"application_questions", kindJSON},
	{"restricted_access", kindJSON},
}

var submissionColumns = []column{
	{"id", kindText},
	{"campaign_id", kindText},
	{"creator_id", kindText},
	{"platform", kindText},
	{"submitted_date", kindTime},
	{"views", kindNumber},
	{"payment_amount", kindNumber},
	{"status", kindText},
	{"video_url", kindText},
}

// selectList renders the column list of a SELECT. Numeric columns are read
// as float8 so they land in the record as float64.
func selectList(cols []column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		if c.kind == kindNumber {
			parts[i] = fmt.Sprintf("%s::float8 AS %s", c.name, c.name)
		} else {
			parts[i] = c.name
		}
	}
	return strings.Join(parts, ", ")
}

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Rows are returned as flat records; jsonb columns arrive
// already decoded.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetCampaignRecord returns a campaign row by id.
func (r *CampaignRepository) GetCampaignRecord(ctx context.Context, id string) (normalize.Record, error) {
	query := `SELECT ` + selectList(campaignColumns) + ` FROM campaigns WHERE id = $1`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %q: %w", id, port.ErrCampaignNotFound)
	}
	if err != nil {
		return nil, err
	}
	return toRecord(row), nil
}

// SaveCampaignRecord upserts a campaign row keyed by id.
func (r *CampaignRepository) SaveCampaignRecord(ctx context.Context, rec normalize.Record) error {
	if rec.String("id") == "" {
		return errors.New("campaign record has no id")
	}
	query, args := upsertCampaign(rec)
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

// ListSubmissionRecords returns the submissions of a campaign, oldest first.
func (r *CampaignRepository) ListSubmissionRecords(ctx context.Context, campaignID string) ([]normalize.Record, error) {
	query := `SELECT ` + selectList(submissionColumns) + `
        FROM submissions
        WHERE campaign_id = $1
        ORDER BY submitted_date, id`
	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}
	out := make([]normalize.Record, 0, len(maps))
	for _, m := range maps {
		out = append(out, toRecord(m))
	}
	return out, nil
}

// toRecord drops NULL columns so they read as absent keys.
func toRecord(row map[string]any) normalize.Record {
	rec := make(normalize.Record, len(row))
	for k, v := range row {
		if v != nil {
			rec[k] = v
		}
	}
	return rec
}

func upsertCampaign(rec normalize.Record) (string, []any) {
	names := make([]string, len(campaignColumns))
	placeholders := make([]string, len(campaignColumns))
	updates := make([]string, 0, len(campaignColumns))
	args := make([]any, len(campaignColumns))

	for i, c := range campaignColumns {
		names[i] = c.name
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if c.name != "id" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c.name, c.name))
		}
		args[i] = columnArg(rec, c)
	}
	updates = append(updates, "updated_at = now()")

	query := fmt.Sprintf(`INSERT INTO campaigns (%s, created_at, updated_at)
VALUES (%s, now(), now())
ON CONFLICT (id) DO UPDATE SET %s`,
		strings.Join(names, ", "), strings.Join(placeholders, ", "), strings.Join(updates, ", "))
	return query, args
}

// columnArg converts a record value into a query argument for c. Missing
// or empty values become NULL. JSON columns take the record's JSON text
// as is.
func columnArg(rec normalize.Record, c column) any {
	if !rec.Has(c.name) {
		return nil
	}
	switch c.kind {
	case kindNumber:
		f, ok := rec.Float(c.name)
		if !ok {
			return nil
		}
		return f
	case kindTime:
		t, present, err := rec.Time(c.name)
		if err != nil || !present {
			return nil
		}
		return t.UTC().Truncate(time.Microsecond)
	default:
		return rec.String(c.name)
	}
}
