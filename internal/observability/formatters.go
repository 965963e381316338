// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonathan/campaign-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func inr(v float64) string {
	return "₹" + decimal.NewFromFloat(v).StringFixed(2)
}

// PrintIntentMix outputs the number of planned keywords per intent and the largest ad groups.
func (p *Printer) PrintIntentMix(records []types.ClassifiedRecord, summary []types.GroupSummary) {
	if len(records) == 0 {
		return
	}

	counts := make(map[types.Intent]int)
	for _, r := range records {
		counts[r.Intent]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keywords: %d\n\n", len(records)))
	for _, intent := range types.AllIntents {
		if n := counts[intent]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", intent, n))
		}
	}

	if len(summary) > 0 {
		sb.WriteString(fmt.Sprintf("\nAd groups: %d\n", len(summary)))
		count := min(len(summary), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", summary[i].AdGroup, summary[i].Keywords))
		}
		if len(summary) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintForecast outputs budget and expected conversions per channel.
func (p *Printer) PrintForecast(plan *types.CampaignPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	writeChannel := func(name string, budget float64, economics []types.Economics) {
		if len(economics) == 0 {
			sb.WriteString(fmt.Sprintf("%-9s no allocation\n", name))
			return
		}
		var spent, conversions float64
		for _, e := range economics {
			spent += e.BudgetINR
			conversions += e.EstConversions
		}
		sb.WriteString(fmt.Sprintf("%-9s %s of %s, %d groups, %.1f conv\n", name, inr(spent), inr(budget), len(economics), conversions))
	}

	search := make([]types.Economics, 0, len(plan.Search))
	for _, a := range plan.Search {
		search = append(search, a.Economics)
	}
	shopping := make([]types.Economics, 0, len(plan.Shopping))
	for _, a := range plan.Shopping {
		shopping = append(shopping, a.Economics)
	}
	assets := make([]types.Economics, 0, len(plan.AssetGroups))
	for _, a := range plan.AssetGroups {
		assets = append(assets, a.Economics)
	}

	writeChannel("Search", plan.Budgets.SearchMonthlyINR, search)
	writeChannel("Shopping", plan.Budgets.ShoppingMonthlyINR, shopping)
	writeChannel("PMax", plan.Budgets.PMaxMonthlyINR, assets)

	p.printBox("MONTHLY FORECAST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExpansion outputs the generated keyword count per theme.
func (p *Printer) PrintExpansion(result *types.ExpansionResult) {
	if result == nil || len(result.AssetGroups) == 0 {
		return
	}

	perTheme := make(map[string]int)
	for _, k := range result.Keywords {
		perTheme[k.ThemeName]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rows: %d across %d themes\n\n", len(result.Keywords), len(result.AssetGroups)))
	count := min(len(result.AssetGroups), maxItemsToShow)
	for i := 0; i < count; i++ {
		g := result.AssetGroups[i]
		sb.WriteString(fmt.Sprintf("• %s [%s, %s]: %d rows\n", g.Name, g.ThemeType, g.Priority, perTheme[g.Name]))
	}
	if len(result.AssetGroups) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more themes", len(result.AssetGroups)-maxItemsToShow))
	}

	p.printBox("KEYWORD EXPANSION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBids outputs the suggested CPC and note for the top product groups.
func (p *Printer) PrintBids(rows []types.BidRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(rows), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := rows[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.ProductGroup))
		sb.WriteString(fmt.Sprintf("    CPC %s  ROAS %.2f  %s", decimal.NewFromFloat(r.SuggestedCPC).StringFixed(2), r.ExpectedROAS, r.Notes))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(rows) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more product groups", len(rows)-maxItemsToShow))
	}

	p.printBox("SUGGESTED BIDS", sb.String())
}
