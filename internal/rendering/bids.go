package rendering

import "github.com/jonathan/campaign-planner/internal/types"

// BidsFile is the bid calculator artifact
const BidsFile = "bids.csv"

var bidsHeader = []string{
	"product_group", "top_of_page_low", "top_of_page_high", "competition", "daily_budget",
	"cvr", "aov", "target_roas", "target_cpa", "target_cpc", "comp_factor", "prelim_cpc",
	"suggested_cpc", "clicks_per_day", "expected_conversions", "expected_roas", "notes",
}

// WriteBids writes bids.csv into dir
func WriteBids(dir string, rows []types.BidRow) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.ProductGroup,
			Money(r.TopOfPageLow),
			Money(r.TopOfPageHigh),
			r.Competition,
			Money(r.DailyBudget),
			Money(r.CVR),
			Money(r.AOV),
			Money(r.TargetROAS),
			Money(r.TargetCPA),
			Money(r.TargetCPC),
			Money(r.CompetitionFactor),
			Money(r.PrelimCPC),
			Money(r.SuggestedCPC),
			Money(r.ClicksPerDay),
			Money(r.ExpectedConversions),
			Money(r.ExpectedROAS),
			r.Notes,
		})
	}
	return writeCSV(dir, BidsFile, bidsHeader, cells)
}
