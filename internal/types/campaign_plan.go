package types

import "time"

// CampaignPlan is everything handed to the plan writer
type CampaignPlan struct {
	RunID       string                 `json:"run_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Records     []ClassifiedRecord     `json:"records"`
	Summary     []GroupSummary         `json:"summary"`
	Search      []SearchAllocation     `json:"search"`
	Shopping    []ShoppingAllocation   `json:"shopping"`
	AssetGroups []AssetGroupAllocation `json:"asset_groups"`
	Negatives   []string               `json:"negatives"`
	Budgets     BudgetSnapshot         `json:"budgets"`
}

// GroupSummary counts the keywords in one campaign/ad group
type GroupSummary struct {
	Campaign string `json:"campaign"`
	AdGroup  string `json:"ad_group"`
	Keywords int    `json:"keywords"`
}

// BudgetSnapshot echoes the channel budgets the plan was forecast with
type BudgetSnapshot struct {
	ShoppingMonthlyINR float64 `json:"shopping_monthly_inr"`
	SearchMonthlyINR   float64 `json:"search_monthly_inr"`
	PMaxMonthlyINR     float64 `json:"pmax_monthly_inr"`
	AOVINR             float64 `json:"aov_inr"`
}
