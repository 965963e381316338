package forecast

import (
	"sort"

	"github.com/jonathan/campaign-planner/internal/types"
)

type searchGroup struct {
	campaign string
	adGroup  string
	cpcSum   float64
	count    int
	volume   float64
}

// Search allocates the search budget across (campaign, ad_group) groups in proportion to
// their total known search volume, or evenly when no volume is known. Each group's CPC is
// the mean suggested max CPC of its keywords. Groups come out sorted by campaign, ad group.
func Search(records []types.ClassifiedRecord, budget float64, s Settings) []types.SearchAllocation {
	if budget <= 0 || len(records) == 0 {
		return nil
	}

	index := make(map[[2]string]*searchGroup)
	var groups []*searchGroup
	total := 0.0
	for _, rec := range records {
		key := [2]string{rec.Campaign, rec.AdGroup}
		g, ok := index[key]
		if !ok {
			g = &searchGroup{campaign: rec.Campaign, adGroup: rec.AdGroup}
			index[key] = g
			groups = append(groups, g)
		}
		g.cpcSum += rec.SuggestedMaxCPCINR
		g.count++
		if v, ok := rec.Volume(); ok {
			g.volume += v
			total += v
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].campaign != groups[j].campaign {
			return groups[i].campaign < groups[j].campaign
		}
		return groups[i].adGroup < groups[j].adGroup
	})

	out := make([]types.SearchAllocation, 0, len(groups))
	for _, g := range groups {
		share := 1 / float64(len(groups))
		if total > 0 {
			share = g.volume / total
		}
		out = append(out, types.SearchAllocation{
			Campaign:  g.campaign,
			AdGroup:   g.adGroup,
			Economics: Economics(share*budget, g.cpcSum/float64(g.count), s),
		})
	}
	return out
}
