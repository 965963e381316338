package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Keyword", "keyword"},
		{"  Search Term ", "search_term"},
		{"Avg. monthly searches", "avg_monthly_searches"},
		{"Average Monthly Searches", "avg_monthly_searches"},
		{"Top of page bid (low range)", "top_of_page_bid_low_range"},
		{"Top of page bid (high range) – INR", "top_of_page_bid_high_range_inr"},
		{"Avg. monthly searches (exact match only)", "avg_monthly_searches_exact_match_only"},
		{"__Final URL__", "final_url"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHeader(tt.in))
		})
	}
}

func TestNewColumnIndex_PriorityAndAbsent(t *testing.T) {
	cols := newColumnIndex([]string{"Query", "Keyword", "Comp", "Final URL"})

	assert.Equal(t, 1, cols.keyword)
	assert.Equal(t, 2, cols.competition)
	assert.Equal(t, 3, cols.landingPage)
	assert.Equal(t, -1, cols.volume)
	assert.Equal(t, -1, cols.location)
}

func TestSniffDelimiter(t *testing.T) {
	d, ok := sniffDelimiter(`"Keyword";"Avg, monthly"`)
	assert.True(t, ok)
	assert.Equal(t, ';', d)

	d, ok = sniffDelimiter("Keyword\tVolume")
	assert.True(t, ok)
	assert.Equal(t, '\t', d)

	_, ok = sniffDelimiter("Keyword,Volume;Notes")
	assert.False(t, ok)
}

func TestDetectDelimiter_FrequencyFallback(t *testing.T) {
	assert.Equal(t, ';', detectDelimiter("Keyword;Volume;Notes,extra"))
	assert.Equal(t, ',', detectDelimiter("Keyword,Volume;Notes"))
	assert.Equal(t, '|', detectDelimiter("Keyword|Volume|Bid\tx"))
}

func TestFindHeader_RequiresMarkerAndDelimiter(t *testing.T) {
	lines := []string{"Keyword Planner export", "Currency: INR, India", "Search term,Volume"}

	idx, err := findHeader(lines)

	assert.NoError(t, err)
	assert.Equal(t, 2, idx)
}
