package classify

import (
	"github.com/shopspring/decimal"

	"github.com/jonathan/campaign-planner/internal/types"
)

// Skew ratios used to derive a missing side of an observed bid range
const (
	lowFromHighRatio = 0.6
	highFromLowRatio = 1.4
)

// BidSuggestion is a suggested CPC range in INR; Max is the midpoint
type BidSuggestion struct {
	Low  float64
	High float64
	Max  float64
}

// SuggestBid prefers observed top-of-page bids and falls back to the intent's default range.
// All values are rounded to two decimals and satisfy 0 <= Low <= Max <= High.
func (r *Rules) SuggestBid(intent types.Intent, observedLow, observedHigh *float64) BidSuggestion {
	var low, high float64
	switch {
	case observedLow != nil && observedHigh != nil:
		low, high = *observedLow, *observedHigh
	case observedLow != nil:
		low, high = *observedLow, *observedLow*highFromLowRatio
	case observedHigh != nil:
		low, high = *observedHigh*lowFromHighRatio, *observedHigh
	default:
		rng := r.CPCFor(intent)
		low, high = rng.Low, rng.High
	}

	if low > high {
		low, high = high, low
	}

	return BidSuggestion{
		Low:  round2(low),
		High: round2(high),
		Max:  round2((low + high) / 2),
	}
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
