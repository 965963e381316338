package rendering

import (
	"strconv"

	"github.com/jonathan/campaign-planner/internal/schemas"
	"github.com/jonathan/campaign-planner/internal/types"
	planschemas "github.com/jonathan/campaign-planner/schemas"
)

// Plan artifact file names
const (
	AdGroupsFile       = "ad_groups.csv"
	SummaryFile        = "summary.csv"
	ForecastSearchFile = "forecast_search.csv"
	NegativesFile      = "negatives.csv"
	ShoppingFile       = "shopping_structure.csv"
	AssetGroupsFile    = "pmax_asset_groups.csv"
	BudgetsFile        = "budgets.csv"
	PlanJSONFile       = "campaign_plan.json"
)

var economicsHeader = []string{
	"budget_inr", "avg_cpc_inr", "est_clicks", "est_conversions", "cpa_inr", "revenue_inr", "roas",
}

func economicsCells(e types.Economics) []string {
	return []string{
		Money(e.BudgetINR),
		Money(e.AvgCPCINR),
		Money(e.EstClicks),
		Money(e.EstConversions),
		Money(e.CPAINR),
		Money(e.RevenueINR),
		OptionalMoney(e.ROAS),
	}
}

// Normalized returns a copy of the plan whose list fields are never nil
func Normalized(plan *types.CampaignPlan) *types.CampaignPlan {
	p := *plan
	if p.Records == nil {
		p.Records = []types.ClassifiedRecord{}
	}
	if p.Summary == nil {
		p.Summary = []types.GroupSummary{}
	}
	if p.Search == nil {
		p.Search = []types.SearchAllocation{}
	}
	if p.Shopping == nil {
		p.Shopping = []types.ShoppingAllocation{}
	}
	if p.AssetGroups == nil {
		p.AssetGroups = []types.AssetGroupAllocation{}
	}
	if p.Negatives == nil {
		p.Negatives = []string{}
	}
	return &p
}

// WritePlan validates the plan document and writes every plan sheet plus the JSON
// document into dir. It returns the written paths in write order.
func WritePlan(dir string, plan *types.CampaignPlan) ([]string, error) {
	if plan == nil {
		return nil, &RenderError{Message: "plan is nil"}
	}
	plan = Normalized(plan)

	if err := schemas.ValidateDocument(planschemas.CampaignPlan, plan); err != nil {
		return nil, &RenderError{Message: "campaign plan failed schema validation", Cause: err}
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{AdGroupsFile, adGroupsHeader, adGroupRows(plan.Records)},
		{SummaryFile, []string{"campaign", "ad_group", "keywords"}, summaryRows(plan.Summary)},
		{ForecastSearchFile, append([]string{"campaign", "ad_group"}, economicsHeader...), searchRows(plan.Search)},
		{NegativesFile, []string{"negative_keyword"}, negativeRows(plan.Negatives)},
		{ShoppingFile, append([]string{"campaign", "ad_group", "product_theme", "example_keywords"}, economicsHeader...), shoppingRows(plan.Shopping)},
		{AssetGroupsFile, append([]string{"campaign", "asset_group", "audience_hint", "example_keywords"}, economicsHeader...), assetGroupRows(plan.AssetGroups)},
		{BudgetsFile, []string{"shopping_monthly_inr", "search_monthly_inr", "pmax_monthly_inr", "aov_inr"}, budgetRows(plan.Budgets)},
	}

	paths := make([]string, 0, len(sheets)+1)
	for _, s := range sheets {
		path, err := writeCSV(dir, s.name, s.header, s.rows)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	data, err := marshalJSON(plan, "")
	if err != nil {
		return paths, &RenderError{Message: "failed to marshal campaign plan", Cause: err}
	}
	path, err := writeFile(dir, PlanJSONFile, append(data, '\n'))
	if err != nil {
		return paths, err
	}
	return append(paths, path), nil
}

var adGroupsHeader = []string{
	"campaign", "ad_group", "keyword", "match_type",
	"suggested_max_cpc_inr", "suggested_cpc_low_inr", "suggested_cpc_high_inr",
	"avg_monthly_searches", "competition", "top_of_page_bid_low", "top_of_page_bid_high",
	"location", "landing_page", "source", "intent", "category_bucket",
}

func adGroupRows(records []types.ClassifiedRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Campaign,
			r.AdGroup,
			r.Keyword,
			string(r.MatchType),
			Money(r.SuggestedMaxCPCINR),
			Money(r.SuggestedCPCLowINR),
			Money(r.SuggestedCPCHighINR),
			OptionalNumber(r.AvgMonthlySearches),
			r.Competition,
			OptionalMoney(r.TopOfPageBidLow),
			OptionalMoney(r.TopOfPageBidHigh),
			r.Location,
			r.LandingPage,
			r.Source,
			string(r.Intent),
			r.CategoryBucket,
		})
	}
	return rows
}

func summaryRows(summary []types.GroupSummary) [][]string {
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{s.Campaign, s.AdGroup, strconv.Itoa(s.Keywords)})
	}
	return rows
}

func searchRows(search []types.SearchAllocation) [][]string {
	rows := make([][]string, 0, len(search))
	for _, a := range search {
		rows = append(rows, append([]string{a.Campaign, a.AdGroup}, economicsCells(a.Economics)...))
	}
	return rows
}

func negativeRows(negatives []string) [][]string {
	rows := make([][]string, 0, len(negatives))
	for _, n := range negatives {
		rows = append(rows, []string{n})
	}
	return rows
}

func shoppingRows(shopping []types.ShoppingAllocation) [][]string {
	rows := make([][]string, 0, len(shopping))
	for _, a := range shopping {
		rows = append(rows, append([]string{a.Campaign, a.AdGroup, a.ProductTheme, a.ExampleKeywords}, economicsCells(a.Economics)...))
	}
	return rows
}

func assetGroupRows(groups []types.AssetGroupAllocation) [][]string {
	rows := make([][]string, 0, len(groups))
	for _, a := range groups {
		rows = append(rows, append([]string{a.Campaign, a.AssetGroup, a.AudienceHint, a.ExampleKeywords}, economicsCells(a.Economics)...))
	}
	return rows
}

func budgetRows(b types.BudgetSnapshot) [][]string {
	return [][]string{{
		Money(b.ShoppingMonthlyINR),
		Money(b.SearchMonthlyINR),
		Money(b.PMaxMonthlyINR),
		Money(b.AOVINR),
	}}
}
