// Package roi defines the merchant data structures and the upgrade impact
// model used to estimate revenue and margin gains per growth scenario.
package roi

import (
	"fmt"
	"strings"

	"github.com/iwvelando/roas-calculator/pkg/constants"
	"github.com/iwvelando/roas-calculator/pkg/mathutil"
)

// GrowthScenario selects which percentage delta applies to a feature's
// impact estimate. The set is closed: Low, Medium, High.
type GrowthScenario string

const (
	Low    GrowthScenario = "Low"
	Medium GrowthScenario = "Medium"
	High   GrowthScenario = "High"
)

// Scenarios lists all growth scenarios in ascending order.
var Scenarios = []GrowthScenario{Low, Medium, High}

// ParseScenario converts a case-insensitive scenario name into a
// GrowthScenario.
func ParseScenario(s string) (GrowthScenario, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	}
	return "", fmt.Errorf("unknown growth scenario %q, expected Low, Medium, or High", s)
}

// Feature identifies one of the seven upgrade features the model covers.
type Feature string

const (
	CheckoutCustomization Feature = "checkoutCustomization"
	CheckoutUpsell        Feature = "checkoutUpsell"
	PlusSupport           Feature = "plusSupport"
	AudiencesRetargeting  Feature = "audiencesRetargeting"
	ShopPayConversion     Feature = "shopPayConversion"
	ShopPayAOV            Feature = "shopPayAOV"
	NonShopPayConversion  Feature = "nonShopPayConversion"
)

// Features lists all features in the order they are reported.
var Features = []Feature{
	CheckoutCustomization,
	CheckoutUpsell,
	PlusSupport,
	AudiencesRetargeting,
	ShopPayConversion,
	ShopPayAOV,
	NonShopPayConversion,
}

// Variant distinguishes the two structural forms of the impact formula.
type Variant string

const (
	// VariantConversion models a conversion-rate lift translated into
	// additional orders at the current AOV.
	VariantConversion Variant = "conversion"

	// VariantAOV models an AOV lift applied across the existing order volume.
	VariantAOV Variant = "aov"
)

// featureModel carries the hard-coded per-scenario deltas for one feature.
// The deltas are fractions, e.g. 0.03 for a 3% lift.
type featureModel struct {
	label   string
	variant Variant
	deltas  map[GrowthScenario]float64
}

// impactModel is the entire business model: a fixed mapping from feature to
// its per-scenario lift and formula variant. These constants are load-bearing
// and must not be changed without revisiting the published estimates.
var impactModel = map[Feature]featureModel{
	CheckoutCustomization: {
		label:   "Checkout Customization with API",
		variant: VariantConversion,
		deltas:  map[GrowthScenario]float64{Low: 0.01, Medium: 0.03, High: 0.05},
	},
	CheckoutUpsell: {
		label:   "Checkout Upsell with 3P apps",
		variant: VariantAOV,
		deltas:  map[GrowthScenario]float64{Low: 0.05, Medium: 0.10, High: 0.20},
	},
	PlusSupport: {
		label:   "Plus Support Help",
		variant: VariantConversion,
		deltas:  map[GrowthScenario]float64{Low: 0.005, Medium: 0.01, High: 0.015},
	},
	AudiencesRetargeting: {
		label:   "Increased Retargeting with Audiences",
		variant: VariantConversion,
		deltas:  map[GrowthScenario]float64{Low: 0.02, Medium: 0.04, High: 0.06},
	},
	ShopPayConversion: {
		label:   "Increased Conversion with Shop Pay",
		variant: VariantConversion,
		deltas:  map[GrowthScenario]float64{Low: 0.03, Medium: 0.05, High: 0.07},
	},
	ShopPayAOV: {
		label:   "Increased AOV with Shop Pay",
		variant: VariantAOV,
		deltas:  map[GrowthScenario]float64{Low: 0.05, Medium: 0.10, High: 0.20},
	},
	NonShopPayConversion: {
		label:   "Increased Conversion without Shop Pay",
		variant: VariantConversion,
		deltas:  map[GrowthScenario]float64{Low: 0.01, Medium: 0.02, High: 0.03},
	},
}

// ParseFeature converts a case-insensitive feature key into a Feature.
func ParseFeature(s string) (Feature, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, feature := range Features {
		if strings.ToLower(string(feature)) == needle {
			return feature, nil
		}
	}
	return "", fmt.Errorf("unknown feature %q", s)
}

// Label returns the display name for a feature.
func (f Feature) Label() string {
	if model, ok := impactModel[f]; ok {
		return model.label
	}
	return string(f)
}

// FeatureVariant returns the formula variant used for a feature.
func FeatureVariant(f Feature) (Variant, error) {
	model, ok := impactModel[f]
	if !ok {
		return "", fmt.Errorf("unknown feature %q", f)
	}
	return model.variant, nil
}

// Delta returns the configured lift fraction for a feature under a scenario.
func Delta(f Feature, s GrowthScenario) (float64, error) {
	model, ok := impactModel[f]
	if !ok {
		return 0, fmt.Errorf("unknown feature %q", f)
	}
	delta, ok := model.deltas[s]
	if !ok {
		return 0, fmt.Errorf("unknown growth scenario %q", s)
	}
	return delta, nil
}

// MerchantMetrics holds the merchant business inputs for the ROI model.
// All values are non-negative; percentage fields are bounded 0-100 by the
// collecting UI. Immutable once built.
type MerchantMetrics struct {
	AnnualGMV                   float64 `json:"annualGMV" yaml:"annualGMV"`
	AOV                         float64 `json:"aov" yaml:"aov"`
	AnnualTransactions          float64 `json:"annualTransactions" yaml:"annualTransactions"`
	ProfitMargin                float64 `json:"profitMargin" yaml:"profitMargin"` // percentage
	AdSpend                     float64 `json:"adSpend" yaml:"adSpend"`
	RetargetingBudgetAllocation float64 `json:"retargetingBudgetAllocation" yaml:"retargetingBudgetAllocation"` // percentage
	RetargetingCPA              float64 `json:"retargetingCPA" yaml:"retargetingCPA"`
	ProspectingCPA              float64 `json:"prospectingCPA" yaml:"prospectingCPA"`
	LTV                         float64 `json:"ltv" yaml:"ltv"`
	PaymentsProfileOnline       float64 `json:"paymentsProfileOnline" yaml:"paymentsProfileOnline"` // percentage
	OrdersOnPayments            float64 `json:"ordersOnPayments" yaml:"ordersOnPayments"`           // percentage
	CurrentConversionRate       float64 `json:"currentConversionRate" yaml:"currentConversionRate"` // percentage
	ShopPayUsage                float64 `json:"shopPayUsage" yaml:"shopPayUsage"`                   // percentage
}

// UpgradeMetrics maps priced upgrade features to per-scenario costs. Only a
// subset of features carries a price; unlisted features net at gross impact.
type UpgradeMetrics struct {
	Costs map[Feature]map[GrowthScenario]float64 `json:"costs" yaml:"costs"`
}

// Cost returns the configured upgrade cost for a feature under a scenario
// and whether one is configured.
func (u UpgradeMetrics) Cost(f Feature, s GrowthScenario) (float64, bool) {
	scenarios, ok := u.Costs[f]
	if !ok {
		return 0, false
	}
	cost, ok := scenarios[s]
	return cost, ok
}

// Impact is the result bundle for one feature under one scenario.
type Impact struct {
	Feature  Feature        `json:"feature"`
	Label    string         `json:"label"`
	Scenario GrowthScenario `json:"scenario"`
	Variant  Variant        `json:"variant"`

	// Delta is the applied lift fraction, e.g. 0.03 for a 3% lift.
	Delta float64 `json:"delta"`

	// Conversion variant outputs; zero for the AOV variant.
	NewConversionRate float64 `json:"newConversionRate,omitempty"`
	AdditionalOrders  float64 `json:"additionalOrders,omitempty"`

	// AOV variant outputs; zero for the conversion variant.
	NewAOV   float64 `json:"newAOV,omitempty"`
	AOVDelta float64 `json:"aovDelta,omitempty"`

	RevenueImpact float64 `json:"revenueImpact"`
	MarginImpact  float64 `json:"marginImpact"`
}

// EstimateImpact evaluates the impact model for one feature under one
// scenario. It is the single parameterized evaluator behind all seven
// feature estimates.
func EstimateImpact(m MerchantMetrics, f Feature, s GrowthScenario) (Impact, error) {
	model, ok := impactModel[f]
	if !ok {
		return Impact{}, fmt.Errorf("unknown feature %q", f)
	}
	delta, ok := model.deltas[s]
	if !ok {
		return Impact{}, fmt.Errorf("unknown growth scenario %q", s)
	}

	impact := Impact{
		Feature:  f,
		Label:    model.label,
		Scenario: s,
		Variant:  model.variant,
		Delta:    delta,
	}

	// Currency outputs are rounded to cents so float noise from the
	// percentage arithmetic never reaches consumers.
	switch model.variant {
	case VariantConversion:
		impact.NewConversionRate = m.CurrentConversionRate * (1 + delta)
		impact.AdditionalOrders = m.AnnualTransactions * delta
		impact.RevenueImpact = mathutil.Round(impact.AdditionalOrders * m.AOV)
	case VariantAOV:
		impact.NewAOV = mathutil.Round(m.AOV * (1 + delta))
		impact.AOVDelta = mathutil.Round(impact.NewAOV - m.AOV)
		impact.RevenueImpact = mathutil.Round(m.AnnualTransactions * impact.AOVDelta)
	}

	impact.MarginImpact = mathutil.Round(impact.RevenueImpact * (m.ProfitMargin / constants.PercentageMultiplier))
	return impact, nil
}

// EstimateAll evaluates every feature for one scenario, in reporting order.
func EstimateAll(m MerchantMetrics, s GrowthScenario) ([]Impact, error) {
	impacts := make([]Impact, 0, len(Features))
	for _, feature := range Features {
		impact, err := EstimateImpact(m, feature, s)
		if err != nil {
			return nil, err
		}
		impacts = append(impacts, impact)
	}
	return impacts, nil
}
