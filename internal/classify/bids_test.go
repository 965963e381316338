package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/campaign-planner/internal/types"
)

func TestSuggestBid_Defaults(t *testing.T) {
	rules := DefaultRules()

	bid := rules.SuggestBid(types.IntentBrand, nil, nil)
	assert.Equal(t, BidSuggestion{Low: 3, High: 8, Max: 5.5}, bid)

	bid = rules.SuggestBid(types.IntentCategory, nil, nil)
	assert.Equal(t, BidSuggestion{Low: 12, High: 35, Max: 23.5}, bid)
}

func TestSuggestBid_ObservedBothSides(t *testing.T) {
	bid := DefaultRules().SuggestBid(types.IntentCategory, types.Float(10.123), types.Float(20.457))
	assert.Equal(t, 10.12, bid.Low)
	assert.Equal(t, 20.46, bid.High)
	assert.Equal(t, 15.29, bid.Max)
}

func TestSuggestBid_DerivesMissingSide(t *testing.T) {
	rules := DefaultRules()

	bid := rules.SuggestBid(types.IntentBrand, types.Float(10), nil)
	assert.Equal(t, 10.0, bid.Low)
	assert.Equal(t, 14.0, bid.High)
	assert.Equal(t, 12.0, bid.Max)

	bid = rules.SuggestBid(types.IntentBrand, nil, types.Float(10))
	assert.Equal(t, 6.0, bid.Low)
	assert.Equal(t, 10.0, bid.High)
	assert.Equal(t, 8.0, bid.Max)
}

func TestSuggestBid_InvertedObservedRangeIsOrdered(t *testing.T) {
	bid := DefaultRules().SuggestBid(types.IntentBrand, types.Float(30), types.Float(10))
	assert.Equal(t, 10.0, bid.Low)
	assert.Equal(t, 30.0, bid.High)
	assert.Equal(t, 20.0, bid.Max)
}

func TestSuggestBid_Bounds(t *testing.T) {
	rules := DefaultRules()
	values := []*float64{nil, types.Float(0), types.Float(0.015), types.Float(7.777), types.Float(120)}

	for _, intent := range types.AllIntents {
		for _, lo := range values {
			for _, hi := range values {
				bid := rules.SuggestBid(intent, lo, hi)
				assert.GreaterOrEqual(t, bid.Low, 0.0)
				assert.LessOrEqual(t, bid.Low, bid.Max)
				assert.LessOrEqual(t, bid.Max, bid.High)
			}
		}
	}
}
