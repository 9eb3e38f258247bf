// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/roas-calculator/internal/campaign"
	"github.com/iwvelando/roas-calculator/internal/roi"
	"github.com/iwvelando/roas-calculator/pkg/format"
)

// PrettyBreakdown outputs a human-readable cost breakdown and ROAS comparison.
func PrettyBreakdown(b campaign.Breakdown) {
	fmt.Printf("--- Cost Breakdown ---\n")
	fmt.Printf("Ad Spend: %s\n", format.Currency(b.Campaign.AdSpend))
	fmt.Printf("New Buyer Ad Spend (%s share): %s\n",
		format.Percent(b.Campaign.NewBuyerShare), format.Currency(b.NewBuyerAdSpend))
	fmt.Printf("Discount Amount (%s on new buyer spend): %s\n",
		format.Percent(b.Campaign.DiscountPercentage), format.Currency(b.DiscountAmount))
	fmt.Printf("Total Cost: %s\n", format.Currency(b.TotalCost))
	fmt.Printf("\n--- ROAS Comparison ---\n")
	fmt.Printf("Traditional ROAS (like Meta/Google): %s\n", format.Ratio(b.TraditionalROAS))
	fmt.Printf("Adjusted ROAS (discount included):   %s\n", format.Ratio(b.AdjustedROAS))
}

// CsvBreakdown outputs the cost breakdown in comma-separated value format.
func CsvBreakdown(b campaign.Breakdown) {
	fmt.Print(BreakdownCSVString(b))
}

// BreakdownCSVString renders the cost breakdown as CSV.
func BreakdownCSVString(b campaign.Breakdown) string {
	var sb strings.Builder
	sb.WriteString(`"metric","value"` + "\n")
	sb.WriteString(fmt.Sprintf(`"ad spend","%.2f"`+"\n", b.Campaign.AdSpend))
	sb.WriteString(fmt.Sprintf(`"new buyer ad spend","%.2f"`+"\n", b.NewBuyerAdSpend))
	sb.WriteString(fmt.Sprintf(`"discount amount","%.2f"`+"\n", b.DiscountAmount))
	sb.WriteString(fmt.Sprintf(`"total cost","%.2f"`+"\n", b.TotalCost))
	sb.WriteString(fmt.Sprintf(`"traditional roas","%.2f"`+"\n", b.TraditionalROAS))
	sb.WriteString(fmt.Sprintf(`"adjusted roas","%.2f"`+"\n", b.AdjustedROAS))
	return sb.String()
}

// PrettyImpacts outputs the per-feature impact details for one scenario.
func PrettyImpacts(scenario roi.GrowthScenario, impacts []roi.Impact) {
	fmt.Printf("--- Feature Impact Analysis (%s growth) ---\n", scenario)
	for _, impact := range impacts {
		fmt.Printf("\n%s\n", impact.Label)
		switch impact.Variant {
		case roi.VariantConversion:
			fmt.Printf("  Conversion Rate Increase: %s\n", format.Percent(impact.Delta*100))
			fmt.Printf("  New Conversion Rate: %.2f%%\n", impact.NewConversionRate)
			fmt.Printf("  Additional Orders: %s\n", format.Count(impact.AdditionalOrders))
		case roi.VariantAOV:
			fmt.Printf("  AOV Increase: %s\n", format.Percent(impact.Delta*100))
			fmt.Printf("  New AOV: %s\n", format.Currency(impact.NewAOV))
		}
		fmt.Printf("  Revenue Impact: %s\n", format.Currency(impact.RevenueImpact))
		fmt.Printf("  Margin Impact: %s\n", format.Currency(impact.MarginImpact))
	}
}

// PrettySummary outputs the growth-from-upgrading table.
func PrettySummary(s roi.Summary) {
	fmt.Printf("--- Growth from Upgrading ---\n")
	fmt.Printf("%-40s | %-14s | %-14s | %-14s\n", "Feature", "Low Growth", "Medium Growth", "High Growth")
	fmt.Printf("%s | %s | %s | %s\n",
		strings.Repeat("_", 40), strings.Repeat("_", 14), strings.Repeat("_", 14), strings.Repeat("_", 14))
	for _, row := range s.Rows {
		fmt.Printf("%-40s | %-14s | %-14s | %-14s\n",
			row.Label,
			format.Currency(row.Margin[roi.Low]),
			format.Currency(row.Margin[roi.Medium]),
			format.Currency(row.Margin[roi.High]))
	}

	if hasNet(s) {
		fmt.Printf("\n--- Net of Upgrade Costs ---\n")
		for _, row := range s.Rows {
			if row.Net == nil {
				continue
			}
			fmt.Printf("%-40s | %-14s | %-14s | %-14s\n",
				row.Label,
				format.Currency(row.Net[roi.Low]),
				format.Currency(row.Net[roi.Medium]),
				format.Currency(row.Net[roi.High]))
		}
	}
}

// CsvSummary outputs the growth-from-upgrading table in CSV format.
func CsvSummary(s roi.Summary) {
	fmt.Print(SummaryCSVString(s))
}

// SummaryCSVString renders the growth-from-upgrading table as CSV. When any
// row carries upgrade costs, net-of-cost and cost columns are appended;
// unpriced rows leave those cells empty.
func SummaryCSVString(s roi.Summary) string {
	withNet := hasNet(s)
	var sb strings.Builder
	sb.WriteString(`"feature","low growth","medium growth","high growth"`)
	if withNet {
		sb.WriteString(`,"low net","medium net","high net","low cost","medium cost","high cost"`)
	}
	sb.WriteString("\n")
	for _, row := range s.Rows {
		sb.WriteString(fmt.Sprintf(`"%s","%.2f","%.2f","%.2f"`,
			row.Label, row.Margin[roi.Low], row.Margin[roi.Medium], row.Margin[roi.High]))
		if withNet {
			if row.Net != nil {
				sb.WriteString(fmt.Sprintf(`,"%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
					row.Net[roi.Low], row.Net[roi.Medium], row.Net[roi.High],
					row.Costs[roi.Low], row.Costs[roi.Medium], row.Costs[roi.High]))
			} else {
				sb.WriteString(`,"","","","","",""`)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func hasNet(s roi.Summary) bool {
	for _, row := range s.Rows {
		if row.Net != nil {
			return true
		}
	}
	return false
}
