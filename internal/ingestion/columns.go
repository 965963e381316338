package ingestion

import (
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

var headerPhraseAliases = strings.NewReplacer(
	"avg. monthly searches", "avg_monthly_searches",
	"average monthly searches", "avg_monthly_searches",
	"top of page bid", "top_of_page_bid",
)

// NormalizeHeader maps a raw column title to its snake_case canonical form
func NormalizeHeader(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.NewReplacer("–", "-", "—", "-").Replace(s)
	s = headerPhraseAliases.Replace(s)
	s = nonAlnumRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// Canonical fields and the column names accepted for each, in priority order
var (
	keywordColumns = []string{
		"keyword", "keywords", "keyword_text", "plan_keyword", "search_term", "query", "search_keyword",
	}
	volumeColumns = []string{
		"avg_monthly_searches", "average_monthly_searches", "avg_monthly_searches_exact_match_only",
		"search_volume", "volume", "avg_searches",
	}
	competitionColumns = []string{
		"competition", "comp", "competition_level", "competition_index", "competition_indexed_value",
	}
	bidLowColumns = []string{
		"top_of_page_bid_low", "top_of_page_bid_low_range", "top_of_page_bid_low_inr",
		"top_of_page_bid_low_range_inr", "top_of_page_bid_low_micros", "low_top_of_page_bid",
	}
	bidHighColumns = []string{
		"top_of_page_bid_high", "top_of_page_bid_high_range", "top_of_page_bid_high_inr",
		"top_of_page_bid_high_range_inr", "top_of_page_bid_high_micros", "high_top_of_page_bid",
	}
	locationColumns = []string{
		"location", "locations", "geo", "country", "city", "targeting_location",
	}
	landingPageColumns = []string{
		"landing_page", "final_url", "url", "destination_url", "page",
	}
)

// columnIndex resolves canonical fields to positions in a header row
type columnIndex struct {
	keyword, volume, competition, bidLow, bidHigh, location, landingPage int
}

func newColumnIndex(header []string) columnIndex {
	positions := make(map[string]int, len(header))
	for i, title := range header {
		name := NormalizeHeader(title)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}
	return columnIndex{
		keyword:     pick(positions, keywordColumns),
		volume:      pick(positions, volumeColumns),
		competition: pick(positions, competitionColumns),
		bidLow:      pick(positions, bidLowColumns),
		bidHigh:     pick(positions, bidHighColumns),
		location:    pick(positions, locationColumns),
		landingPage: pick(positions, landingPageColumns),
	}
}

// pick returns the position of the first accepted name present, or -1
func pick(positions map[string]int, names []string) int {
	for _, n := range names {
		if i, ok := positions[n]; ok {
			return i
		}
	}
	return -1
}

// field returns the trimmed cell at position i, or "" for an absent column
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
