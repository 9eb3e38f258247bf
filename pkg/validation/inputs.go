package validation

import (
	"fmt"

	"github.com/iwvelando/roas-calculator/pkg/constants"
)

// Range checks are advisory: out-of-range inputs still compute, matching the
// formula layer's contract, but the caller surfaces these warnings so the
// user knows the numbers fall outside the expected bounds.

// CheckNonNegative returns a warning when value is negative.
func CheckNonNegative(name string, value float64) []string {
	if value < 0 {
		return []string{fmt.Sprintf("%s is negative (%.2f); expected a non-negative value", name, value)}
	}
	return nil
}

// CheckPercentage returns warnings when value falls outside [0, 100].
func CheckPercentage(name string, value float64) []string {
	if value < 0 {
		return []string{fmt.Sprintf("%s is negative (%.2f); expected a percentage between 0 and 100", name, value)}
	}
	if value > constants.MaxPercentage {
		return []string{fmt.Sprintf("%s exceeds 100 (%.2f); expected a percentage between 0 and 100", name, value)}
	}
	return nil
}

// CampaignInput mirrors the four campaign fields for validation purposes.
type CampaignInput struct {
	Revenue            float64
	AdSpend            float64
	NewBuyerShare      float64
	DiscountPercentage float64
}

// CheckCampaign aggregates advisory warnings for one campaign record.
func CheckCampaign(in CampaignInput) []string {
	var warnings []string
	warnings = append(warnings, CheckNonNegative("revenue", in.Revenue)...)
	warnings = append(warnings, CheckNonNegative("adSpend", in.AdSpend)...)
	warnings = append(warnings, CheckPercentage("newBuyerShare", in.NewBuyerShare)...)
	warnings = append(warnings, CheckPercentage("discountPercentage", in.DiscountPercentage)...)
	return warnings
}

// MerchantInput mirrors the merchant metric fields subject to validation.
type MerchantInput struct {
	AnnualGMV                   float64
	AOV                         float64
	AnnualTransactions          float64
	ProfitMargin                float64
	AdSpend                     float64
	RetargetingBudgetAllocation float64
	RetargetingCPA              float64
	ProspectingCPA              float64
	LTV                         float64
	PaymentsProfileOnline       float64
	OrdersOnPayments            float64
	CurrentConversionRate       float64
	ShopPayUsage                float64
}

// CheckMerchant aggregates advisory warnings for one merchant record.
func CheckMerchant(in MerchantInput) []string {
	var warnings []string
	warnings = append(warnings, CheckNonNegative("annualGMV", in.AnnualGMV)...)
	warnings = append(warnings, CheckNonNegative("aov", in.AOV)...)
	warnings = append(warnings, CheckNonNegative("annualTransactions", in.AnnualTransactions)...)
	warnings = append(warnings, CheckPercentage("profitMargin", in.ProfitMargin)...)
	warnings = append(warnings, CheckNonNegative("adSpend", in.AdSpend)...)
	warnings = append(warnings, CheckPercentage("retargetingBudgetAllocation", in.RetargetingBudgetAllocation)...)
	warnings = append(warnings, CheckNonNegative("retargetingCPA", in.RetargetingCPA)...)
	warnings = append(warnings, CheckNonNegative("prospectingCPA", in.ProspectingCPA)...)
	warnings = append(warnings, CheckNonNegative("ltv", in.LTV)...)
	warnings = append(warnings, CheckPercentage("paymentsProfileOnline", in.PaymentsProfileOnline)...)
	warnings = append(warnings, CheckPercentage("ordersOnPayments", in.OrdersOnPayments)...)
	warnings = append(warnings, CheckPercentage("currentConversionRate", in.CurrentConversionRate)...)
	warnings = append(warnings, CheckPercentage("shopPayUsage", in.ShopPayUsage)...)
	return warnings
}

// CheckScenarioCosts warns when per-scenario costs break the conventional
// Low <= Medium <= High ordering. The ordering is not enforced.
func CheckScenarioCosts(name string, low, medium, high float64) []string {
	var warnings []string
	if medium < low {
		warnings = append(warnings, fmt.Sprintf("%s: medium cost (%.2f) is below low cost (%.2f)", name, medium, low))
	}
	if high < medium {
		warnings = append(warnings, fmt.Sprintf("%s: high cost (%.2f) is below medium cost (%.2f)", name, high, medium))
	}
	return warnings
}
