package domain

// VisibilityKind controls who may see and join a campaign.
type VisibilityKind string

const (
	VisibilityPublic          VisibilityKind = "public"
	VisibilityApplicationOnly VisibilityKind = "applicationOnly"
	VisibilityRestricted      VisibilityKind = "restricted"
)

// Visibility carries the extra data of application-only and restricted
// campaigns. Public campaigns carry nothing.
type Visibility struct {
	Kind       VisibilityKind
	Questions  []ApplicationQuestion
	Restricted *RestrictedAccess
}

// AnswerType is the kind of answer an application question expects.
type AnswerType string

const (
	AnswerText   AnswerType = "text"
	AnswerImage  AnswerType = "image"
	AnswerNumber AnswerType = "number"
	AnswerLink   AnswerType = "link"
)

// ApplicationQuestion is asked to creators applying to an
// application-only campaign.
type ApplicationQuestion struct {
	ID         string     `json:"id"`
	Question   string     `json:"question"`
	AnswerType AnswerType `json:"answer_type"`
	Required   bool       `json:"required"`
}

// RestrictedMode selects how access to a restricted campaign is granted.
type RestrictedMode string

const (
	RestrictedOffers     RestrictedMode = "offers"
	RestrictedInviteLink RestrictedMode = "inviteLink"
)

// RestrictedAccess grants access either to holders of specific offers or to
// anyone with the invite link.
type RestrictedAccess struct {
	Mode       RestrictedMode `json:"mode"`
	OfferIDs   []string       `json:"offer_ids,omitempty"`
	InviteLink string         `json:"invite_link,omitempty"`
}
