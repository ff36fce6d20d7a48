package port

import (
	"context"
	"errors"

	"creator-campaigns/internal/core/normalize"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNotRetainer      = errors.New("campaign is not a retainer")
)

// CampaignRepository defines the persistence layer for campaigns and their
// submissions. It is an outbound port in hexagonal architecture. Records
// are returned in their stored, flat shape; turning them into domain values
// is the normalizer's job, not the repository's.
type CampaignRepository interface {
	// GetCampaignRecord returns the stored record of a campaign or
	// ErrCampaignNotFound.
	GetCampaignRecord(ctx context.Context, id string) (normalize.Record, error)
	// SaveCampaignRecord inserts or replaces a campaign record keyed by its
	// "id" field.
	SaveCampaignRecord(ctx context.Context, rec normalize.Record) error
	// ListSubmissionRecords returns every submission stored for a campaign,
	// oldest first.
	ListSubmissionRecords(ctx context.Context, campaignID string) ([]normalize.Record, error)
}
