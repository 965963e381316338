package classify

import (
	"fmt"
	"strings"

	"github.com/jonathan/campaign-planner/internal/types"
)

// Fixed ad group labels
const (
	AdGroupBrand      = "Brand Terms"
	AdGroupCompetitor = "Competitor Terms"
	AdGroupLongTail   = "Long-Tail Informational Queries"
	LocationGeneral   = "General"
	CampaignOther     = "Search - Other"

	adGroupLocationPrefix = "Location - "
	adGroupCategoryPrefix = "Category - "
)

// intentRule is one link of the precedence chain
type intentRule struct {
	intent types.Intent
	match  func(r *Rules, t *Terms, keyword string) bool
}

// intentChain is evaluated in order; the first matching rule decides the intent
var intentChain = []intentRule{
	{types.IntentBrand, func(_ *Rules, t *Terms, kw string) bool { return t.HasBrand(kw) }},
	{types.IntentCompetitor, func(_ *Rules, t *Terms, kw string) bool { return t.HasCompetitor(kw) }},
	{types.IntentLocation, func(_ *Rules, t *Terms, kw string) bool { return t.HasLocation(kw) }},
	{types.IntentLongTail, func(r *Rules, _ *Terms, kw string) bool { return anyMatch(r.LongTailTriggers, kw) }},
}

// Intent classifies a keyword. It is total: keywords matching no rule are Category.
func (r *Rules) Intent(keyword string, terms *Terms) types.Intent {
	kw := strings.ToLower(keyword)
	for _, rule := range intentChain {
		if rule.match(r, terms, kw) {
			return rule.intent
		}
	}
	return types.IntentCategory
}

// Bucket returns the first product category whose patterns match, or BucketOther
func (r *Rules) Bucket(keyword string) string {
	kw := strings.ToLower(keyword)
	for _, c := range r.Categories {
		if anyMatch(c.Patterns, kw) {
			return c.Name
		}
	}
	return BucketOther
}

// MatchTypeFor returns Exact for short Brand and Location keywords, Phrase otherwise
func MatchTypeFor(intent types.Intent, keyword string) types.MatchType {
	if (intent == types.IntentBrand || intent == types.IntentLocation) && len(strings.Fields(keyword)) <= 3 {
		return types.MatchExact
	}
	return types.MatchPhrase
}

// AdGroupFor derives the ad group label from the intent
func (r *Rules) AdGroupFor(intent types.Intent, keyword string, terms *Terms) string {
	switch intent {
	case types.IntentBrand:
		return AdGroupBrand
	case types.IntentCompetitor:
		return AdGroupCompetitor
	case types.IntentLocation:
		city, ok := terms.CityFor(strings.ToLower(keyword))
		if !ok {
			city = LocationGeneral
		}
		return adGroupLocationPrefix + city
	case types.IntentLongTail:
		return AdGroupLongTail
	default:
		return adGroupCategoryPrefix + r.Bucket(keyword)
	}
}

// CampaignFor maps an intent to its search campaign
func CampaignFor(intent types.Intent) string {
	if !intent.Valid() {
		return CampaignOther
	}
	return fmt.Sprintf("Search - %s", intent)
}

// LocationOfAdGroup returns the city of a "Location - <city>" ad group label
func LocationOfAdGroup(adGroup string) string {
	return strings.TrimPrefix(adGroup, adGroupLocationPrefix)
}

// Classify applies every rule to one keyword record
func (r *Rules) Classify(rec types.KeywordRecord, terms *Terms) types.ClassifiedRecord {
	intent := r.Intent(rec.Keyword, terms)
	bid := r.SuggestBid(intent, rec.TopOfPageBidLow, rec.TopOfPageBidHigh)

	return types.ClassifiedRecord{
		KeywordRecord:       rec,
		Intent:              intent,
		CategoryBucket:      r.Bucket(rec.Keyword),
		Campaign:            CampaignFor(intent),
		AdGroup:             r.AdGroupFor(intent, rec.Keyword, terms),
		MatchType:           MatchTypeFor(intent, rec.Keyword),
		SuggestedCPCLowINR:  bid.Low,
		SuggestedCPCHighINR: bid.High,
		SuggestedMaxCPCINR:  bid.Max,
	}
}
