package domain

import "math"

// RetainerProgress is a creator's completion of a retainer's deliverables.
type RetainerProgress struct {
	ApprovedCount        int `json:"approved_count"`
	TotalRequired        int `json:"total_required"`
	CompletionPercentage int `json:"completion_percentage"`
}

// ComputeRetainerProgress counts the creator's approved or paid submissions
// for the campaign against the deliverables total. The percentage is
// rounded, 0 when nothing is required and capped at 100 when a creator
// delivers more than required. Non-retainer campaigns yield the zero value.
func ComputeRetainerProgress(submissions []Submission, c Campaign, creatorID string) RetainerProgress {
	return MatchDetails(c.Details,
		func(r Retainer) RetainerProgress { return retainerProgress(submissions, c.ID, creatorID, r) },
		func(PayPerView) RetainerProgress { return RetainerProgress{} },
		func(Challenge) RetainerProgress { return RetainerProgress{} },
	)
}

func retainerProgress(submissions []Submission, campaignID, creatorID string, r Retainer) RetainerProgress {
	p := RetainerProgress{TotalRequired: r.Deliverables.TotalRequired()}
	for _, s := range submissions {
		if s.CampaignID != campaignID || s.CreatorID != creatorID {
			continue
		}
		if s.IsApproved() {
			p.ApprovedCount++
		}
	}

	if p.TotalRequired <= 0 {
		return p
	}
	pct := math.Round(float64(p.ApprovedCount) / float64(p.TotalRequired) * 100)
	p.CompletionPercentage = int(math.Min(pct, 100))
	return p
}
