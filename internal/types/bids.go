package types

// BidRow is the suggested CPC for one shopping product group
type BidRow struct {
	ProductGroup        string  `json:"product_group"`
	TopOfPageLow        float64 `json:"top_of_page_low"`
	TopOfPageHigh       float64 `json:"top_of_page_high"`
	Competition         string  `json:"competition"`
	DailyBudget         float64 `json:"daily_budget"`
	CVR                 float64 `json:"cvr"`
	AOV                 float64 `json:"aov"`
	TargetROAS          float64 `json:"target_roas"`
	TargetCPA           float64 `json:"target_cpa"`
	TargetCPC           float64 `json:"target_cpc"`
	CompetitionFactor   float64 `json:"comp_factor"`
	PrelimCPC           float64 `json:"prelim_cpc"`
	SuggestedCPC        float64 `json:"suggested_cpc"`
	ClicksPerDay        float64 `json:"clicks_per_day"`
	ExpectedConversions float64 `json:"expected_conversions"`
	ExpectedROAS        float64 `json:"expected_roas"`
	Notes               string  `json:"notes"`
}
