package domain

import "time"

// CampaignType discriminates the three campaign variants.
type CampaignType string

const (
	CampaignTypeRetainer   CampaignType = "retainer"
	CampaignTypePayPerView CampaignType = "payPerView"
	CampaignTypeChallenge  CampaignType = "challenge"
)

// Platform is a social network a campaign accepts content from.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformX         Platform = "x"
)

// ContentType is the style of content a brand asks creators for.
type ContentType string

const (
	ContentTypeUGC       ContentType = "ugc"
	ContentTypeClipping  ContentType = "clipping"
	ContentTypeFaceless  ContentType = "faceless"
	ContentTypeSlideshow ContentType = "slideshow"
)

// Country restricts which creators may take part.
type Country string

const (
	CountryWorldwide     Country = "worldwide"
	CountryUnitedStates  Country = "us"
	CountryUnitedKingdom Country = "uk"
	CountryCanada        Country = "ca"
	CountryAustralia     Country = "au"
	CountryEurope        Country = "eu"
)

// CampaignStatus tracks the lifecycle of a campaign. A campaign stays a
// draft until it passes full validation.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// DefaultCurrency is used whenever a currency code is missing or unknown.
const DefaultCurrency = "USD"

// Campaign is the envelope shared by every campaign variant. The
// variant-specific data lives in Details.
// Budgets are stored in major currency units (e.g. dollars).
type Campaign struct {
	ID                  string
	BrandID             string
	Title               string
	Description         string
	Currency            string
	TotalBudget         float64
	EndDate             time.Time
	Platforms           []Platform
	ContentType         ContentType
	Category            string
	CountryAvailability Country
	Visibility          Visibility
	Status              CampaignStatus

	BannerImage          string
	Guidelines           Guidelines
	Brief                *Brief
	TrackingLink         string
	ExampleVideos        []string
	TikTokShopCommission *ShopCommission

	Details Details
}

// Type returns the variant of the campaign, or "" when Details is unset
// (an in-progress draft).
func (c Campaign) Type() CampaignType {
	if c.Details == nil {
		return ""
	}
	return c.Details.Type()
}

// HasPlatform reports whether p is one of the campaign platforms.
func (c Campaign) HasPlatform(p Platform) bool {
	for _, v := range c.Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// Guidelines lists what creators should and should not do.
type Guidelines struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// Brief is the creative brief attached to a campaign.
type Brief struct {
	Overview    string   `json:"overview"`
	KeyMessages []string `json:"key_messages,omitempty"`
	FileURL     string   `json:"file_url,omitempty"`
}

// ShopCommission configures the TikTok Shop affiliate commission paid on
// top of the campaign rate.
type ShopCommission struct {
	Enabled    bool    `json:"enabled"`
	Percentage float64 `json:"percentage"`
}
