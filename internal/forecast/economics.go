// Package forecast splits channel budgets across the keyword plan and derives clicks,
// conversions, cost per acquisition, revenue and return on ad spend for each group.
package forecast

import (
	"math"

	"github.com/jonathan/campaign-planner/internal/classify"
	"github.com/jonathan/campaign-planner/internal/config"
	"github.com/jonathan/campaign-planner/internal/types"
)

// DefaultEpsilon is the smallest CPC used as a click divisor
const DefaultEpsilon = 1e-6

// Settings are the economics assumptions shared by every channel
type Settings struct {
	ConversionRate float64
	AOV            float64
	Epsilon        float64
	Rules          *classify.Rules
}

// SettingsFromConfig builds Settings from the budgets section
func SettingsFromConfig(b *config.Budgets, rules *classify.Rules) Settings {
	s := Settings{Rules: rules}
	if b != nil {
		s.ConversionRate = b.ConversionRate
		s.AOV = b.AOVINR
	}
	return s.withDefaults()
}

func (s Settings) withDefaults() Settings {
	if s.ConversionRate <= 0 {
		s.ConversionRate = config.DefaultConversionRate
	}
	if s.Epsilon <= 0 {
		s.Epsilon = DefaultEpsilon
	}
	if s.Rules == nil {
		s.Rules = classify.DefaultRules()
	}
	return s
}

// Economics derives the shared metrics for one group's budget and average CPC.
// ROAS is nil when the budget is zero.
func Economics(budget, avgCPC float64, s Settings) types.Economics {
	s = s.withDefaults()

	clicks := budget / math.Max(avgCPC, s.Epsilon)
	conversions := clicks * s.ConversionRate
	revenue := conversions * s.AOV

	e := types.Economics{
		BudgetINR:      budget,
		AvgCPCINR:      avgCPC,
		EstClicks:      clicks,
		EstConversions: conversions,
		CPAINR:         avgCPC / s.ConversionRate,
		RevenueINR:     revenue,
	}
	if budget != 0 {
		roas := revenue / budget
		e.ROAS = &roas
	}
	return e
}
