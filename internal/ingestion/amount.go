package ingestion

import (
	"math"
	"strconv"
	"strings"
)

// amountNoise is removed before parsing; longer tokens precede their prefixes
var amountNoise = strings.NewReplacer(
	",", "",
	"₹", "",
	"rs.", "",
	"rs", "",
	"inr", "",
	"usd", "",
	"$", "",
	"€", "",
	"£", "",
	"--", "",
	"—", "",
)

// ParseAmount coerces a currency-like cell to a number. Empty, unparsable, infinite
// and negative values are reported as missing (nil), never as zero.
func ParseAmount(raw string) *float64 {
	s := amountNoise.Replace(strings.ToLower(raw))
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}
