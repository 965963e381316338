// Package bidding derives a suggested shopping CPC per product group from account-wide
// conversion targets and the observed top-of-page bid range.
package bidding

import (
	"sort"
	"strings"

	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/types"
)

// Tuning constants
const (
	// MinClicksPerDay is the daily click volume below which a group is budget constrained
	MinClicksPerDay = 30.0
	// retryUplift raises the preliminary CPC once for constrained groups with headroom
	retryUplift = 1.15
)

// Notes attached to each row
const (
	NoteIncreaseBudget = "Increase budget"
	NoteConstrained    = "Constrained"
	NoteMonitor        = "Monitor"
)

var competitionFactors = map[string]float64{
	"low":    0.85,
	"medium": 1.0,
	"high":   1.3,
}

// CompetitionFactor returns the CPC multiplier for a competition level, 1.0 when unknown
func CompetitionFactor(level string) float64 {
	if f, ok := competitionFactors[strings.ToLower(strings.TrimSpace(level))]; ok {
		return f
	}
	return 1.0
}

// Targets are the resolved account-wide economics
type Targets struct {
	CVR        float64
	AOV        float64
	TargetROAS float64
	TargetCPA  float64
}

// TargetsFromConfig resolves the global section, filling defaults for absent values
func TargetsFromConfig(g config.BidGlobal) Targets {
	t := Targets{
		CVR:        valueOr(g.CVR, config.DefaultCVR),
		AOV:        valueOr(g.AOV, config.DefaultAOV),
		TargetROAS: valueOr(g.TargetROAS, config.DefaultTargetROAS),
	}
	t.TargetCPA = valueOr(g.TargetCPA, t.AOV/t.TargetROAS)
	return t
}

// TargetCPC is the CPC at which the target CPA is met
func (t Targets) TargetCPC() float64 {
	return t.TargetCPA * t.CVR
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

func clicksFor(budget, cpc float64) float64 {
	if cpc <= 0 {
		return 0
	}
	return budget / cpc
}

// Suggest computes the bid row for one product group
func Suggest(bid config.ShoppingBid, t Targets) types.BidRow {
	level := strings.ToLower(strings.TrimSpace(bid.Competition))
	if level == "" {
		level = strings.ToLower(config.DefaultCompetition)
	}
	factor := CompetitionFactor(level)
	targetCPC := t.TargetCPC()
	prelim := targetCPC * factor

	suggested := clamp(prelim, bid.TopOfPageLow, bid.TopOfPageHigh)
	clicks := clicksFor(bid.DailyBudget, suggested)
	if clicks < MinClicksPerDay && suggested < bid.TopOfPageHigh {
		suggested = clamp(prelim*retryUplift, bid.TopOfPageLow, bid.TopOfPageHigh)
		clicks = clicksFor(bid.DailyBudget, suggested)
	}

	conversions := clicks * t.CVR
	spend := clicks * suggested
	roas := 0.0
	if spend > 0 {
		roas = conversions * t.AOV / spend
	}

	return types.BidRow{
		ProductGroup:        strings.TrimSpace(bid.ProductGroup),
		TopOfPageLow:        bid.TopOfPageLow,
		TopOfPageHigh:       bid.TopOfPageHigh,
		Competition:         capitalize(level),
		DailyBudget:         bid.DailyBudget,
		CVR:                 t.CVR,
		AOV:                 t.AOV,
		TargetROAS:          t.TargetROAS,
		TargetCPA:           t.TargetCPA,
		TargetCPC:           targetCPC,
		CompetitionFactor:   factor,
		PrelimCPC:           prelim,
		SuggestedCPC:        suggested,
		ClicksPerDay:        clicks,
		ExpectedConversions: conversions,
		ExpectedROAS:        roas,
		Notes:               noteFor(roas, clicks, t.TargetROAS),
	}
}

func noteFor(roas, clicks, targetROAS float64) string {
	switch {
	case roas >= targetROAS && clicks >= MinClicksPerDay:
		return NoteIncreaseBudget
	case clicks < MinClicksPerDay:
		return NoteConstrained
	default:
		return NoteMonitor
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Compute suggests a bid for every configured product group, sorted by expected ROAS
// then clicks, both descending
func Compute(cfg *config.BidConfig) []types.BidRow {
	if cfg == nil {
		return nil
	}
	t := TargetsFromConfig(cfg.Global)

	rows := make([]types.BidRow, 0, len(cfg.ShoppingBids))
	for _, bid := range cfg.ShoppingBids {
		rows = append(rows, Suggest(bid, t))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ExpectedROAS != rows[j].ExpectedROAS {
			return rows[i].ExpectedROAS > rows[j].ExpectedROAS
		}
		return rows[i].ClicksPerDay > rows[j].ClicksPerDay
	})
	return rows
}
