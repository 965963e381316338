package rendering

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/campaign-planner/internal/types"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func samplePlan() *types.CampaignPlan {
	roas := 3.2
	return &types.CampaignPlan{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Records: []types.ClassifiedRecord{
			{
				KeywordRecord: types.KeywordRecord{
					Keyword:            "whey protein mumbai",
					AvgMonthlySearches: types.Float(880),
					Competition:        "High",
					TopOfPageBidLow:    types.Float(12.5),
					Location:           "Mumbai",
					Source:             "brand",
				},
				Intent:              types.IntentLocation,
				CategoryBucket:      "Protein/Whey",
				Campaign:            "Search - Location",
				AdGroup:             "Location - Mumbai",
				MatchType:           types.MatchExact,
				SuggestedCPCLowINR:  12.5,
				SuggestedCPCHighINR: 17.5,
				SuggestedMaxCPCINR:  15,
			},
		},
		Summary: []types.GroupSummary{{Campaign: "Search - Location", AdGroup: "Location - Mumbai", Keywords: 1}},
		Search: []types.SearchAllocation{{
			Campaign:  "Search - Location",
			AdGroup:   "Location - Mumbai",
			Economics: types.Economics{BudgetINR: 1000, AvgCPCINR: 15, EstClicks: 66.666, EstConversions: 1.333, CPAINR: 750, RevenueINR: 3200, ROAS: &roas},
		}},
		Negatives: []string{"free", "jobs"},
		Budgets:   types.BudgetSnapshot{SearchMonthlyINR: 1000, AOVINR: 2400},
	}
}

func TestWritePlan(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WritePlan(dir, samplePlan())

	require.NoError(t, err)
	require.Len(t, paths, 8)
	assert.Equal(t, filepath.Join(dir, PlanJSONFile), paths[7])

	adGroups := readCSV(t, filepath.Join(dir, AdGroupsFile))
	require.Len(t, adGroups, 2)
	assert.Equal(t, adGroupsHeader, adGroups[0])
	assert.Equal(t, []string{
		"Search - Location", "Location - Mumbai", "whey protein mumbai", "Exact",
		"15.00", "12.50", "17.50", "880", "High", "12.50", "",
		"Mumbai", "", "brand", "Location", "Protein/Whey",
	}, adGroups[1])

	search := readCSV(t, filepath.Join(dir, ForecastSearchFile))
	assert.Equal(t, []string{"Search - Location", "Location - Mumbai", "1000.00", "15.00", "66.67", "1.33", "750.00", "3200.00", "3.20"}, search[1])

	shopping := readCSV(t, filepath.Join(dir, ShoppingFile))
	assert.Len(t, shopping, 1)

	negatives := readCSV(t, filepath.Join(dir, NegativesFile))
	assert.Equal(t, [][]string{{"negative_keyword"}, {"free"}, {"jobs"}}, negatives)

	budgets := readCSV(t, filepath.Join(dir, BudgetsFile))
	assert.Equal(t, []string{"0.00", "1000.00", "0.00", "2400.00"}, budgets[1])

	data, err := os.ReadFile(filepath.Join(dir, PlanJSONFile))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "run-1", doc["run_id"])
	assert.Equal(t, []any{}, doc["shopping"])
	records := doc["records"].([]any)
	assert.Nil(t, records[0].(map[string]any)["top_of_page_bid_high"])
}

func TestWritePlan_RejectsInvalidPlan(t *testing.T) {
	plan := samplePlan()
	plan.Records[0].MatchType = "Broad"
	dir := t.TempDir()

	_, err := WritePlan(dir, plan)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, err.Error(), "schema validation")
	_, statErr := os.Stat(filepath.Join(dir, PlanJSONFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWritePlan_NilPlan(t *testing.T) {
	_, err := WritePlan(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestNormalized_DoesNotMutateInput(t *testing.T) {
	plan := &types.CampaignPlan{}

	out := Normalized(plan)

	assert.NotNil(t, out.Records)
	assert.NotNil(t, out.Negatives)
	assert.Nil(t, plan.Records)
}
