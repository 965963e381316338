package forecast

import (
	"sort"
	"strings"

	"github.com/jonathan/campaign-planner/internal/types"
)

// ShoppingCampaign is the campaign label of every shopping allocation
const ShoppingCampaign = "Shopping - Standard"

// maxExamples is the number of example keywords carried per group
const maxExamples = 3

type bucketGroup struct {
	name     string
	keywords []string
}

// groupByBucket collects Category-intent keywords per bucket in first-seen order
func groupByBucket(records []types.ClassifiedRecord) ([]*bucketGroup, int) {
	index := make(map[string]*bucketGroup)
	var groups []*bucketGroup
	total := 0
	for _, rec := range records {
		if rec.Intent != types.IntentCategory {
			continue
		}
		g, ok := index[rec.CategoryBucket]
		if !ok {
			g = &bucketGroup{name: rec.CategoryBucket}
			index[rec.CategoryBucket] = g
			groups = append(groups, g)
		}
		g.keywords = append(g.keywords, rec.Keyword)
		total++
	}
	return groups, total
}

// examples joins up to n keywords
func examples(keywords []string, n int) string {
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return strings.Join(keywords, ", ")
}

// Shopping allocates the shopping budget across Category-intent buckets in proportion to
// their keyword counts, priced at the Category default CPC midpoint. Buckets come out
// sorted by name.
func Shopping(records []types.ClassifiedRecord, budget float64, s Settings) []types.ShoppingAllocation {
	s = s.withDefaults()
	groups, total := groupByBucket(records)
	if budget <= 0 || total == 0 {
		return nil
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })

	cpc := s.Rules.CPCFor(types.IntentCategory).Midpoint()
	out := make([]types.ShoppingAllocation, 0, len(groups))
	for _, g := range groups {
		share := float64(len(g.keywords)) / float64(total)
		out = append(out, types.ShoppingAllocation{
			Campaign:        ShoppingCampaign,
			AdGroup:         g.name,
			ProductTheme:    g.name,
			ExampleKeywords: examples(g.keywords, maxExamples),
			Economics:       Economics(share*budget, cpc, s),
		})
	}
	return out
}
