package normalize

import (
	"strings"

	"creator-campaigns/internal/core/domain"
)

// enumTable maps every accepted spelling of an enum to its canonical value.
// Unrecognized input resolves to fallback; the fallback is part of the
// table so the defaulting policy lives next to the synonyms.
type enumTable[T ~string] struct {
	field    string
	entries  map[string]T
	fallback T
}

func newEnumTable[T ~string](field string, fallback T, synonyms map[T][]string) enumTable[T] {
	t := enumTable[T]{field: field, entries: make(map[string]T), fallback: fallback}
	for canonical, names := range synonyms {
		t.entries[enumKey(string(canonical))] = canonical
		for _, name := range names {
			t.entries[enumKey(name)] = canonical
		}
	}
	return t
}

// lookup returns the canonical value for raw. ok is false when raw was not
// recognized and the fallback was returned.
func (t enumTable[T]) lookup(raw string) (v T, ok bool) {
	if v, ok = t.entries[enumKey(raw)]; ok {
		return v, true
	}
	return t.fallback, false
}

// enumKey folds case and drops separators, so "Pay Per View",
// "pay_per_view" and "payPerView" share a key.
func enumKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '.', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// campaignTypes has no usable fallback: a record of unknown type cannot be
// normalized into any variant.
var campaignTypes = newEnumTable("type", domain.CampaignType(""), map[domain.CampaignType][]string{
	domain.CampaignTypeRetainer:   {"retainer", "retainers", "monthly retainer"},
	domain.CampaignTypePayPerView: {"pay per view", "ppv", "cpm", "per view", "pay-per-view"},
	domain.CampaignTypeChallenge:  {"challenge", "contest", "competition"},
})

var platforms = newEnumTable("platforms", domain.PlatformTikTok, map[domain.Platform][]string{
	domain.PlatformTikTok:    {"tiktok", "tik tok", "tt", "douyin"},
	domain.PlatformInstagram: {"instagram", "ig", "insta", "instagram reels", "reels"},
	domain.PlatformYouTube:   {"youtube", "yt", "youtube shorts", "shorts"},
	domain.PlatformX:         {"x", "twitter", "x/twitter", "twitter/x"},
})

var contentTypes = newEnumTable("content_type", domain.ContentTypeUGC, map[domain.ContentType][]string{
	domain.ContentTypeUGC:       {"ugc", "user generated content", "user generated", "creator content"},
	domain.ContentTypeClipping:  {"clipping", "clips", "clip", "clipper"},
	domain.ContentTypeFaceless:  {"faceless", "faceless content", "no face"},
	domain.ContentTypeSlideshow: {"slideshow", "slideshows", "carousel", "photo mode"},
})

var countries = newEnumTable("country_availability", domain.CountryWorldwide, map[domain.Country][]string{
	domain.CountryWorldwide:     {"worldwide", "global", "all", "any", "international"},
	domain.CountryUnitedStates:  {"us", "usa", "united states", "united states of america", "america"},
	domain.CountryUnitedKingdom: {"uk", "gb", "united kingdom", "great britain", "england"},
	domain.CountryCanada:        {"ca", "canada"},
	domain.CountryAustralia:     {"au", "australia"},
	domain.CountryEurope:        {"eu", "europe", "european union"},
})

var visibilities = newEnumTable("visibility", domain.VisibilityPublic, map[domain.VisibilityKind][]string{
	domain.VisibilityPublic:          {"public", "open", "everyone"},
	domain.VisibilityApplicationOnly: {"application only", "application", "apply", "application required", "private"},
	domain.VisibilityRestricted:      {"restricted", "invite only", "invite", "hidden"},
})

var campaignStatuses = newEnumTable("status", domain.CampaignStatusDraft, map[domain.CampaignStatus][]string{
	domain.CampaignStatusDraft:     {"draft", "pending", "new"},
	domain.CampaignStatusActive:    {"active", "live", "published", "running"},
	domain.CampaignStatusPaused:    {"paused", "on hold", "inactive"},
	domain.CampaignStatusCompleted: {"completed", "complete", "ended", "finished", "closed"},
})

var answerTypes = newEnumTable("application_questions.answer_type", domain.AnswerText, map[domain.AnswerType][]string{
	domain.AnswerText:   {"text", "string", "short text", "long text", "paragraph"},
	domain.AnswerImage:  {"image", "photo", "picture", "screenshot", "file"},
	domain.AnswerNumber: {"number", "numeric", "integer"},
	domain.AnswerLink:   {"link", "url"},
})

var distributionTypes = newEnumTable("prize_pool.distribution_type", domain.DistributionEqual, map[domain.DistributionType][]string{
	domain.DistributionEqual:  {"equal", "even", "split"},
	domain.DistributionCustom: {"custom", "ranked", "places", "tiered"},
})

var deliverablesModes = newEnumTable("deliverables.mode", domain.DeliverablesTotalVideos, map[domain.DeliverablesMode][]string{
	domain.DeliverablesVideosPerDay: {"videos per day", "per day", "daily", "cadence"},
	domain.DeliverablesTotalVideos:  {"total videos", "total", "fixed"},
})

var restrictedModes = newEnumTable("restricted_access.mode", domain.RestrictedOffers, map[domain.RestrictedMode][]string{
	domain.RestrictedOffers:     {"offers", "offer", "offer ids"},
	domain.RestrictedInviteLink: {"invite link", "link", "invite"},
})

var submissionStatuses = newEnumTable("status", domain.SubmissionPending, map[domain.SubmissionStatus][]string{
	domain.SubmissionPending:  {"pending", "submitted", "in review", "review", "new"},
	domain.SubmissionApproved: {"approved", "accepted"},
	domain.SubmissionDenied:   {"denied", "rejected", "declined"},
	domain.SubmissionPaid:     {"paid", "payout complete", "settled"},
})
