package domain

import "time"

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionDenied   SubmissionStatus = "denied"
	SubmissionPaid     SubmissionStatus = "paid"
)

// Submission is one piece of content a creator posted for a campaign. It is
// never deleted, only re-statused by the brand.
type Submission struct {
	ID            string
	CreatorID     string
	CampaignID    string
	Platform      Platform
	SubmittedDate time.Time
	Views         int64
	PaymentAmount float64
	Status        SubmissionStatus
	VideoURL      string
}

// IsApproved reports whether the submission counts as approved content.
// Paid submissions were approved first.
func (s Submission) IsApproved() bool {
	return s.Status == SubmissionApproved || s.Status == SubmissionPaid
}

// ClaimsBudget reports whether the payment amount is reserved against the
// campaign budget.
func (s Submission) ClaimsBudget() bool {
	switch s.Status {
	case SubmissionPending, SubmissionApproved, SubmissionPaid:
		return true
	default:
		return false
	}
}
