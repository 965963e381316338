// Package types provides type definitions for structured data used throughout the campaign-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Intent is the classified purpose of a keyword
type Intent string

// Intent values, listed in classification precedence order
const (
	IntentBrand      Intent = "Brand"
	IntentCompetitor Intent = "Competitor"
	IntentLocation   Intent = "Location"
	IntentLongTail   Intent = "LongTail"
	IntentCategory   Intent = "Category"
)

// AllIntents lists every intent in precedence order
var AllIntents = []Intent{IntentBrand, IntentCompetitor, IntentLocation, IntentLongTail, IntentCategory}

// Valid reports whether the intent is one of the known values
func (i Intent) Valid() bool {
	for _, known := range AllIntents {
		if i == known {
			return true
		}
	}
	return false
}

// MatchType is the keyword matching strictness mode
type MatchType string

// Match types
const (
	MatchExact  MatchType = "Exact"
	MatchPhrase MatchType = "Phrase"
)

// SourceFallback tags records produced by the fallback seed set
const SourceFallback = "fallback"

// KeywordRecord is one canonical keyword row after normalization.
// Optional numbers are nil when missing; they are never negative.
type KeywordRecord struct {
	Keyword            string   `json:"keyword"`
	AvgMonthlySearches *float64 `json:"avg_monthly_searches"`
	Competition        string   `json:"competition"`
	TopOfPageBidLow    *float64 `json:"top_of_page_bid_low"`
	TopOfPageBidHigh   *float64 `json:"top_of_page_bid_high"`
	Location           string   `json:"location"`
	LandingPage        string   `json:"landing_page"`
	Source             string   `json:"source"`
}

// Volume returns the search volume and whether it is known
func (r *KeywordRecord) Volume() (float64, bool) {
	if r.AvgMonthlySearches == nil {
		return 0, false
	}
	return *r.AvgMonthlySearches, true
}

// ClassifiedRecord is a KeywordRecord with its classification and bid suggestion
type ClassifiedRecord struct {
	KeywordRecord
	Intent              Intent    `json:"intent"`
	CategoryBucket      string    `json:"category_bucket"`
	Campaign            string    `json:"campaign"`
	AdGroup             string    `json:"ad_group"`
	MatchType           MatchType `json:"match_type"`
	SuggestedCPCLowINR  float64   `json:"suggested_cpc_low_inr"`
	SuggestedCPCHighINR float64   `json:"suggested_cpc_high_inr"`
	SuggestedMaxCPCINR  float64   `json:"suggested_max_cpc_inr"`
}

// Float returns a pointer to v, for populating optional fields
func Float(v float64) *float64 {
	return &v
}
