package forecast

import (
	"sort"

	"github.com/jonathan/campaign-planner/internal/classify"
	"github.com/jonathan/campaign-planner/internal/types"
)

// Asset group campaign, budget split and audience hints
const (
	AssetGroupCampaign = "PMax - Core"

	brandShare    = 0.3
	categoryShare = 0.5
	locationShare = 0.2

	maxBrandExamples    = 5
	maxCategoryGroups   = 5
	assetGroupBrand     = "Brand"
	hintBrand           = "brand searchers"
	hintCategory        = "in-market sports nutrition"
	hintLocation        = "geo intent"
	assetCategoryPrefix = "Category - "
	assetLocationPrefix = "Location - "
)

// AssetGroups splits the broad-match budget 30/50/20 across one Brand group, up to five
// category groups by keyword count, and every location group evenly. Sections with no
// keywords are omitted and their share is not redistributed.
func AssetGroups(records []types.ClassifiedRecord, budget float64, s Settings) []types.AssetGroupAllocation {
	s = s.withDefaults()
	if budget <= 0 || len(records) == 0 {
		return nil
	}

	var out []types.AssetGroupAllocation
	out = append(out, brandAssetGroup(records, budget*brandShare, s)...)
	out = append(out, categoryAssetGroups(records, budget*categoryShare, s)...)
	out = append(out, locationAssetGroups(records, budget*locationShare, s)...)
	return out
}

func brandAssetGroup(records []types.ClassifiedRecord, budget float64, s Settings) []types.AssetGroupAllocation {
	var brand []string
	for _, rec := range records {
		if rec.Intent == types.IntentBrand {
			brand = append(brand, rec.Keyword)
		}
	}
	if len(brand) == 0 {
		return nil
	}
	return []types.AssetGroupAllocation{{
		Campaign:        AssetGroupCampaign,
		AssetGroup:      assetGroupBrand,
		AudienceHint:    hintBrand,
		ExampleKeywords: examples(brand, maxBrandExamples),
		Economics:       Economics(budget, s.Rules.CPCFor(types.IntentBrand).Midpoint(), s),
	}}
}

// categoryAssetGroups shares are taken over every Category keyword, so buckets beyond
// the top five leave part of the category budget unallocated
func categoryAssetGroups(records []types.ClassifiedRecord, budget float64, s Settings) []types.AssetGroupAllocation {
	groups, total := groupByBucket(records)
	if total == 0 {
		return nil
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].keywords) != len(groups[j].keywords) {
			return len(groups[i].keywords) > len(groups[j].keywords)
		}
		return groups[i].name < groups[j].name
	})
	if len(groups) > maxCategoryGroups {
		groups = groups[:maxCategoryGroups]
	}

	cpc := s.Rules.CPCFor(types.IntentCategory).Midpoint()
	out := make([]types.AssetGroupAllocation, 0, len(groups))
	for _, g := range groups {
		share := float64(len(g.keywords)) / float64(total)
		out = append(out, types.AssetGroupAllocation{
			Campaign:        AssetGroupCampaign,
			AssetGroup:      assetCategoryPrefix + g.name,
			AudienceHint:    hintCategory,
			ExampleKeywords: examples(g.keywords, maxExamples),
			Economics:       Economics(budget*share, cpc, s),
		})
	}
	return out
}

type cityGroup struct {
	city     string
	keywords []string
}

func locationAssetGroups(records []types.ClassifiedRecord, budget float64, s Settings) []types.AssetGroupAllocation {
	index := make(map[string]*cityGroup)
	var cities []*cityGroup
	for _, rec := range records {
		if rec.Intent != types.IntentLocation {
			continue
		}
		city := classify.LocationOfAdGroup(rec.AdGroup)
		g, ok := index[city]
		if !ok {
			g = &cityGroup{city: city}
			index[city] = g
			cities = append(cities, g)
		}
		g.keywords = append(g.keywords, rec.Keyword)
	}
	if len(cities) == 0 {
		return nil
	}
	sort.SliceStable(cities, func(i, j int) bool {
		return len(cities[i].keywords) > len(cities[j].keywords)
	})

	perCity := budget / float64(len(cities))
	cpc := s.Rules.CPCFor(types.IntentLocation).Midpoint()
	out := make([]types.AssetGroupAllocation, 0, len(cities))
	for _, g := range cities {
		out = append(out, types.AssetGroupAllocation{
			Campaign:        AssetGroupCampaign,
			AssetGroup:      assetLocationPrefix + g.city,
			AudienceHint:    hintLocation,
			ExampleKeywords: examples(g.keywords, maxExamples),
			Economics:       Economics(perCity, cpc, s),
		})
	}
	return out
}
