package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/roas-calculator/internal/campaign"
	"github.com/iwvelando/roas-calculator/internal/roi"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func referenceBreakdown() campaign.Breakdown {
	return campaign.GetBreakdown(campaign.Campaign{
		Revenue: 1000, AdSpend: 100, NewBuyerShare: 10, DiscountPercentage: 20,
	})
}

func referenceSummary(t *testing.T) roi.Summary {
	t.Helper()
	m := roi.MerchantMetrics{
		AOV:                   70,
		AnnualTransactions:    35000,
		ProfitMargin:          15,
		CurrentConversionRate: 3.0,
	}
	summary, err := roi.GetSummary(m, roi.UpgradeMetrics{
		Costs: map[roi.Feature]map[roi.GrowthScenario]float64{
			roi.CheckoutCustomization: {roi.Low: 125, roi.Medium: 378.75, roi.High: 650.19},
		},
	})
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}
	return summary
}

func TestPrettyBreakdown(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyBreakdown(referenceBreakdown())
	})

	if !strings.Contains(out, "--- Cost Breakdown ---") {
		t.Errorf("PrettyBreakdown missing breakdown header")
	}
	if !strings.Contains(out, "Ad Spend: $100.00") {
		t.Errorf("PrettyBreakdown missing ad spend line: %s", out)
	}
	if !strings.Contains(out, "New Buyer Ad Spend (10.0% share): $10.00") {
		t.Errorf("PrettyBreakdown missing new buyer spend line: %s", out)
	}
	if !strings.Contains(out, "Discount Amount (20.0% on new buyer spend): $2.00") {
		t.Errorf("PrettyBreakdown missing discount line: %s", out)
	}
	if !strings.Contains(out, "Total Cost: $102.00") {
		t.Errorf("PrettyBreakdown missing total cost line: %s", out)
	}
	if !strings.Contains(out, "Traditional ROAS (like Meta/Google): 10.00x") {
		t.Errorf("PrettyBreakdown missing traditional ROAS: %s", out)
	}
	if !strings.Contains(out, "9.80x") {
		t.Errorf("PrettyBreakdown missing adjusted ROAS: %s", out)
	}
}

func TestBreakdownCSVString(t *testing.T) {
	csv := BreakdownCSVString(referenceBreakdown())
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 CSV lines, got %d", len(lines))
	}
	if lines[0] != `"metric","value"` {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
	if !strings.Contains(csv, `"discount amount","2.00"`) {
		t.Errorf("CSV missing discount row: %s", csv)
	}
	if !strings.Contains(csv, `"adjusted roas","9.80"`) {
		t.Errorf("CSV missing adjusted roas row: %s", csv)
	}
}

func TestPrettyImpacts(t *testing.T) {
	m := roi.MerchantMetrics{
		AOV: 70, AnnualTransactions: 35000, ProfitMargin: 15, CurrentConversionRate: 3.0,
	}
	impacts, err := roi.EstimateAll(m, roi.Medium)
	if err != nil {
		t.Fatalf("EstimateAll error: %v", err)
	}

	out := captureStdout(t, func() {
		PrettyImpacts(roi.Medium, impacts)
	})

	if !strings.Contains(out, "Feature Impact Analysis (Medium growth)") {
		t.Errorf("PrettyImpacts missing header: %s", out)
	}
	if !strings.Contains(out, "Checkout Customization with API") {
		t.Errorf("PrettyImpacts missing feature label")
	}
	if !strings.Contains(out, "Additional Orders: 1,050") {
		t.Errorf("PrettyImpacts missing additional orders: %s", out)
	}
	if !strings.Contains(out, "Margin Impact: $11,025.00") {
		t.Errorf("PrettyImpacts missing margin impact: %s", out)
	}
	if !strings.Contains(out, "New AOV: $77.00") {
		t.Errorf("PrettyImpacts missing new AOV for upsell at Medium: %s", out)
	}
}

func TestPrettySummary(t *testing.T) {
	out := captureStdout(t, func() {
		PrettySummary(referenceSummary(t))
	})

	if !strings.Contains(out, "--- Growth from Upgrading ---") {
		t.Errorf("PrettySummary missing header")
	}
	if !strings.Contains(out, "Low Growth") || !strings.Contains(out, "High Growth") {
		t.Errorf("PrettySummary missing scenario columns: %s", out)
	}
	if !strings.Contains(out, "$11,025.00") {
		t.Errorf("PrettySummary missing medium margin cell: %s", out)
	}
	if !strings.Contains(out, "--- Net of Upgrade Costs ---") {
		t.Errorf("PrettySummary missing net section: %s", out)
	}
	if !strings.Contains(out, "$10,646.25") {
		t.Errorf("PrettySummary missing net cell: %s", out)
	}
}

func TestSummaryCSVString(t *testing.T) {
	csv := SummaryCSVString(referenceSummary(t))
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	// Header plus one row per feature.
	if len(lines) != 8 {
		t.Fatalf("expected 8 CSV lines, got %d", len(lines))
	}
	if lines[0] != `"feature","low growth","medium growth","high growth","low net","medium net","high net","low cost","medium cost","high cost"` {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
	if !strings.Contains(csv, `"Checkout Customization with API","3675.00","11025.00","18375.00","3550.00","10646.25","17724.81","125.00","378.75","650.19"`) {
		t.Errorf("CSV missing checkout customization row with net and cost cells: %s", csv)
	}
	// Unpriced features keep empty net and cost cells.
	if !strings.Contains(csv, `"Increased AOV with Shop Pay","18375.00","36750.00","73500.00","","","","","",""`) {
		t.Errorf("CSV missing shop pay AOV row: %s", csv)
	}
}

// Without any configured costs the CSV stays at the four margin columns.
func TestSummaryCSVStringNoCosts(t *testing.T) {
	m := roi.MerchantMetrics{
		AOV: 70, AnnualTransactions: 35000, ProfitMargin: 15, CurrentConversionRate: 3.0,
	}
	summary, err := roi.GetSummary(m, roi.UpgradeMetrics{})
	if err != nil {
		t.Fatalf("GetSummary error: %v", err)
	}

	csv := SummaryCSVString(summary)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if lines[0] != `"feature","low growth","medium growth","high growth"` {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
	if !strings.Contains(csv, `"Checkout Customization with API","3675.00","11025.00","18375.00"`) {
		t.Errorf("CSV missing checkout customization row: %s", csv)
	}
}
