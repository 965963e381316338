package forecast

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/campaign-planner/internal/classify"
	"github.com/jonathan/campaign-planner/internal/types"
)

func settings() Settings {
	return Settings{ConversionRate: 0.02, AOV: 1500, Rules: classify.DefaultRules()}
}

func rec(keyword string, intent types.Intent, adGroup, bucket string, volume *float64, maxCPC float64) types.ClassifiedRecord {
	return types.ClassifiedRecord{
		KeywordRecord:      types.KeywordRecord{Keyword: keyword, AvgMonthlySearches: volume},
		Intent:             intent,
		Campaign:           classify.CampaignFor(intent),
		AdGroup:            adGroup,
		CategoryBucket:     bucket,
		SuggestedMaxCPCINR: maxCPC,
	}
}

func TestEconomics(t *testing.T) {
	e := Economics(1000, 10, settings())

	assert.InDelta(t, 100, e.EstClicks, 1e-9)
	assert.InDelta(t, 2, e.EstConversions, 1e-9)
	assert.InDelta(t, 500, e.CPAINR, 1e-9)
	assert.InDelta(t, 3000, e.RevenueINR, 1e-9)
	require.NotNil(t, e.ROAS)
	assert.InDelta(t, 3, *e.ROAS, 1e-9)
}

func TestEconomics_ZeroCPCStaysFinite(t *testing.T) {
	e := Economics(100, 0, settings())

	assert.False(t, math.IsInf(e.EstClicks, 0))
	assert.False(t, math.IsNaN(e.EstClicks))
	assert.InDelta(t, 100/DefaultEpsilon, e.EstClicks, 1)
}

func TestEconomics_ZeroBudgetHasNoROAS(t *testing.T) {
	e := Economics(0, 10, settings())

	assert.Nil(t, e.ROAS)
	assert.Zero(t, e.EstClicks)
}

func TestSearch_SharesByVolume(t *testing.T) {
	records := []types.ClassifiedRecord{
		rec("mf whey", types.IntentBrand, "Brand Terms", "Protein/Whey", types.Float(300), 5),
		rec("mf creatine", types.IntentBrand, "Brand Terms", "Creatine", types.Float(100), 7),
		rec("creatine", types.IntentCategory, "Category - Creatine", "Creatine", types.Float(600), 20),
		rec("bcaa", types.IntentCategory, "Category - BCAA", "BCAA", nil, 10),
	}

	out := Search(records, 10000, settings())

	require.Len(t, out, 3)
	assert.Equal(t, "Search - Brand", out[0].Campaign)
	assert.InDelta(t, 4000, out[0].BudgetINR, 1e-9)
	assert.InDelta(t, 6, out[0].AvgCPCINR, 1e-9)
	assert.Equal(t, "Category - BCAA", out[1].AdGroup)
	assert.Zero(t, out[1].BudgetINR)
	assert.Nil(t, out[1].ROAS)
	assert.Equal(t, "Category - Creatine", out[2].AdGroup)
	assert.InDelta(t, 6000, out[2].BudgetINR, 1e-9)
}

func TestSearch_EqualSharesWithoutVolume(t *testing.T) {
	records := []types.ClassifiedRecord{
		rec("a", types.IntentCategory, "Category - A", "A", nil, 10),
		rec("b", types.IntentCategory, "Category - B", "B", nil, 10),
		rec("c", types.IntentLongTail, "Long-Tail Informational Queries", "Other", nil, 10),
		rec("d", types.IntentBrand, "Brand Terms", "Other", nil, 10),
	}

	out := Search(records, 1000, settings())

	require.Len(t, out, 4)
	for _, a := range out {
		assert.InDelta(t, 250, a.BudgetINR, 1e-9)
	}
}

func TestSearch_EmptyForZeroBudgetOrNoRecords(t *testing.T) {
	records := []types.ClassifiedRecord{rec("a", types.IntentCategory, "Category - A", "A", nil, 10)}

	assert.Empty(t, Search(records, 0, settings()))
	assert.Empty(t, Search(nil, 1000, settings()))
}

func TestShopping(t *testing.T) {
	records := []types.ClassifiedRecord{
		rec("creatine 1", types.IntentCategory, "Category - Creatine", "Creatine", nil, 0),
		rec("whey 1", types.IntentCategory, "Category - Protein/Whey", "Protein/Whey", nil, 0),
		rec("creatine 2", types.IntentCategory, "Category - Creatine", "Creatine", nil, 0),
		rec("creatine 3", types.IntentCategory, "Category - Creatine", "Creatine", nil, 0),
		rec("creatine 4", types.IntentCategory, "Category - Creatine", "Creatine", nil, 0),
		rec("mf whey", types.IntentBrand, "Brand Terms", "Protein/Whey", nil, 0),
	}

	out := Shopping(records, 5000, settings())

	require.Len(t, out, 2)
	assert.Equal(t, ShoppingCampaign, out[0].Campaign)
	assert.Equal(t, "Creatine", out[0].AdGroup)
	assert.Equal(t, "Creatine", out[0].ProductTheme)
	assert.Equal(t, "creatine 1, creatine 2, creatine 3", out[0].ExampleKeywords)
	assert.InDelta(t, 4000, out[0].BudgetINR, 1e-9)
	assert.InDelta(t, 23.5, out[0].AvgCPCINR, 1e-9)
	assert.Equal(t, "Protein/Whey", out[1].AdGroup)
	assert.InDelta(t, 1000, out[1].BudgetINR, 1e-9)

	assert.Empty(t, Shopping(records[5:], 5000, settings()))
	assert.Empty(t, Shopping(records, 0, settings()))
}

func TestAssetGroups_Split(t *testing.T) {
	records := []types.ClassifiedRecord{
		rec("mf whey", types.IntentBrand, "Brand Terms", "Protein/Whey", nil, 0),
		rec("creatine", types.IntentCategory, "Category - Creatine", "Creatine", nil, 0),
		rec("bcaa", types.IntentCategory, "Category - BCAA", "BCAA", nil, 0),
		rec("bcaa powder", types.IntentCategory, "Category - BCAA", "BCAA", nil, 0),
		rec("whey delhi", types.IntentLocation, "Location - Delhi", "Protein/Whey", nil, 0),
		rec("whey mumbai", types.IntentLocation, "Location - Mumbai", "Protein/Whey", nil, 0),
		rec("gym mumbai", types.IntentLocation, "Location - Mumbai", "Other", nil, 0),
	}

	out := AssetGroups(records, 10000, settings())

	require.Len(t, out, 5)
	names := make([]string, 0, len(out))
	for _, a := range out {
		names = append(names, a.AssetGroup)
		assert.Equal(t, AssetGroupCampaign, a.Campaign)
	}
	assert.Equal(t, []string{"Brand", "Category - BCAA", "Category - Creatine", "Location - Mumbai", "Location - Delhi"}, names)

	assert.InDelta(t, 3000, out[0].BudgetINR, 1e-9)
	assert.InDelta(t, 5.5, out[0].AvgCPCINR, 1e-9)
	assert.Equal(t, "brand searchers", out[0].AudienceHint)
	assert.InDelta(t, 5000*2.0/3, out[1].BudgetINR, 1e-9)
	assert.Equal(t, "in-market sports nutrition", out[1].AudienceHint)
	assert.InDelta(t, 1000, out[3].BudgetINR, 1e-9)
	assert.InDelta(t, 21, out[3].AvgCPCINR, 1e-9)
	assert.Equal(t, "geo intent", out[3].AudienceHint)
}

func TestAssetGroups_BudgetNeverExceedsChannel(t *testing.T) {
	var records []types.ClassifiedRecord
	for i := 0; i < 8; i++ {
		bucket := fmt.Sprintf("B%d", i)
		for j := 0; j <= i; j++ {
			records = append(records, rec(fmt.Sprintf("%s kw %d", bucket, j), types.IntentCategory, "Category - "+bucket, bucket, nil, 0))
		}
	}

	out := AssetGroups(records, 1000, settings())

	require.Len(t, out, 5)
	total := 0.0
	for _, a := range out {
		total += a.BudgetINR
	}
	assert.Less(t, total, 500.0)
	assert.Equal(t, "Category - B7", out[0].AssetGroup)
}

func TestAssetGroups_EmptyForZeroBudget(t *testing.T) {
	records := []types.ClassifiedRecord{rec("mf", types.IntentBrand, "Brand Terms", "Other", nil, 0)}

	assert.Empty(t, AssetGroups(records, 0, settings()))
	assert.Empty(t, AssetGroups(nil, 100, settings()))
}

func TestSearch_BudgetConserved(t *testing.T) {
	var records []types.ClassifiedRecord
	for i := 0; i < 12; i++ {
		adGroup := fmt.Sprintf("Category - G%d", i%4)
		records = append(records, rec(fmt.Sprintf("kw %d", i), types.IntentCategory, adGroup, "G", types.Float(float64(i*10)), 12))
	}

	out := Search(records, 75000, settings())

	total := 0.0
	for _, a := range out {
		total += a.BudgetINR
	}
	assert.InDelta(t, 75000, total, 1e-6)
}
