// Package campaign defines the data structures related to an advertising
// campaign and includes functions for computing its return metrics.
package campaign

import (
	"github.com/iwvelando/roas-calculator/pkg/mathutil"
)

// Campaign holds the raw inputs for one campaign measurement. The derived
// quantities (new-buyer ad spend, discount amount) are always recomputed from
// these fields via accessors and are never stored.
type Campaign struct {
	Revenue            float64 `json:"revenue" yaml:"revenue"`
	AdSpend            float64 `json:"adSpend" yaml:"adSpend"`
	NewBuyerShare      float64 `json:"newBuyerShare" yaml:"newBuyerShare"`           // percentage of new buyers (0-100)
	DiscountPercentage float64 `json:"discountPercentage" yaml:"discountPercentage"` // discount percentage (0-100)
}

// NewBuyerAdSpend returns the ad spend attributed to new buyers.
func (c Campaign) NewBuyerAdSpend() float64 {
	return mathutil.ApplyPercentage(c.AdSpend, c.NewBuyerShare)
}

// DiscountAmount returns the total discount amount based on new buyer share.
func (c Campaign) DiscountAmount() float64 {
	return mathutil.ApplyPercentage(c.NewBuyerAdSpend(), c.DiscountPercentage)
}

// TotalCost returns ad spend plus the new-buyer discount amount.
func (c Campaign) TotalCost() float64 {
	return c.AdSpend + c.DiscountAmount()
}

// TraditionalROAS computes Revenue / Ad Spend, the metric reported by
// platforms that ignore discount costs. Returns 0.0 when ad spend is zero.
func TraditionalROAS(c Campaign) float64 {
	return mathutil.SafeRatio(c.Revenue, c.AdSpend)
}

// AdjustedROAS computes Revenue / (Ad Spend + Discount Amount), folding the
// new-buyer discount into the cost denominator. Returns 0.0 when the total
// cost is zero.
func AdjustedROAS(c Campaign) float64 {
	return mathutil.SafeRatio(c.Revenue, c.TotalCost())
}

// Breakdown holds the full cost breakdown and both ROAS figures for a
// campaign, ready for rendering.
type Breakdown struct {
	Campaign        Campaign `json:"campaign"`
	NewBuyerAdSpend float64  `json:"newBuyerAdSpend"`
	DiscountAmount  float64  `json:"discountAmount"`
	TotalCost       float64  `json:"totalCost"`
	TraditionalROAS float64  `json:"traditionalRoas"`
	AdjustedROAS    float64  `json:"adjustedRoas"`
	// ROASDelta is the relative difference of adjusted vs traditional ROAS
	// in percent, 0.0 when traditional ROAS is zero.
	ROASDelta float64 `json:"roasDelta"`
}

// GetBreakdown computes the cost breakdown and ROAS comparison for a
// campaign. Currency amounts are rounded to cents; the ROAS ratios are
// computed from the unrounded inputs.
func GetBreakdown(c Campaign) Breakdown {
	traditional := TraditionalROAS(c)
	adjusted := AdjustedROAS(c)
	return Breakdown{
		Campaign:        c,
		NewBuyerAdSpend: mathutil.Round(c.NewBuyerAdSpend()),
		DiscountAmount:  mathutil.Round(c.DiscountAmount()),
		TotalCost:       mathutil.Round(c.TotalCost()),
		TraditionalROAS: traditional,
		AdjustedROAS:    adjusted,
		ROASDelta:       mathutil.RelativeChange(traditional, adjusted),
	}
}

// WaterfallStep is one bar of the cost breakdown waterfall chart.
type WaterfallStep struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Measure string  `json:"measure"` // relative or total
}

// Waterfall returns the cost breakdown as waterfall chart steps: base ad
// spend, the new-buyer discount on top, and the total.
func (b Breakdown) Waterfall() []WaterfallStep {
	return []WaterfallStep{
		{Label: "Base Ad Spend", Amount: b.Campaign.AdSpend, Measure: "relative"},
		{Label: "New Buyer Discount", Amount: b.DiscountAmount, Measure: "relative"},
		{Label: "Total Cost", Amount: b.TotalCost, Measure: "total"},
	}
}
