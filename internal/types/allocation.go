package types

// Economics holds the derived cost and revenue metrics shared by every allocation view
type Economics struct {
	BudgetINR      float64 `json:"budget_inr"`
	AvgCPCINR      float64 `json:"avg_cpc_inr"`
	EstClicks      float64 `json:"est_clicks"`
	EstConversions float64 `json:"est_conversions"`
	CPAINR         float64 `json:"cpa_inr"`
	RevenueINR     float64 `json:"revenue_inr"`
	// ROAS is nil when the budget is zero
	ROAS *float64 `json:"roas"`
}

// SearchAllocation is the budget share of one search campaign/ad group
type SearchAllocation struct {
	Campaign string `json:"campaign"`
	AdGroup  string `json:"ad_group"`
	Economics
}

// ShoppingAllocation is the budget share of one shopping product category
type ShoppingAllocation struct {
	Campaign        string `json:"campaign"`
	AdGroup         string `json:"ad_group"`
	ProductTheme    string `json:"product_theme"`
	ExampleKeywords string `json:"example_keywords"`
	Economics
}

// AssetGroupAllocation is the budget share of one broad-match asset group
type AssetGroupAllocation struct {
	Campaign        string `json:"campaign"`
	AssetGroup      string `json:"asset_group"`
	AudienceHint    string `json:"audience_hint"`
	ExampleKeywords string `json:"example_keywords"`
	Economics
}
