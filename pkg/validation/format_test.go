package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "table", true},
		{"Empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	if err := ValidateMode("roas"); err != nil {
		t.Errorf("ValidateMode(roas) error = %v", err)
	}
	if err := ValidateMode("roi"); err != nil {
		t.Errorf("ValidateMode(roi) error = %v", err)
	}
	if err := ValidateMode("forecast"); err == nil {
		t.Error("ValidateMode(forecast) expected error")
	}
}

func TestCheckCampaign(t *testing.T) {
	tests := []struct {
		name         string
		input        CampaignInput
		wantWarnings int
	}{
		{
			name:         "Valid campaign",
			input:        CampaignInput{Revenue: 1000, AdSpend: 100, NewBuyerShare: 10, DiscountPercentage: 20},
			wantWarnings: 0,
		},
		{
			name:         "Negative revenue",
			input:        CampaignInput{Revenue: -1, AdSpend: 100, NewBuyerShare: 10, DiscountPercentage: 20},
			wantWarnings: 1,
		},
		{
			name:         "Share above 100",
			input:        CampaignInput{Revenue: 1000, AdSpend: 100, NewBuyerShare: 150, DiscountPercentage: 20},
			wantWarnings: 1,
		},
		{
			name:         "Multiple problems",
			input:        CampaignInput{Revenue: -1, AdSpend: -1, NewBuyerShare: -5, DiscountPercentage: 120},
			wantWarnings: 4,
		},
		{
			name:         "Boundary values are fine",
			input:        CampaignInput{Revenue: 0, AdSpend: 0, NewBuyerShare: 0, DiscountPercentage: 100},
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := CheckCampaign(tt.input)
			if len(warnings) != tt.wantWarnings {
				t.Errorf("CheckCampaign() produced %d warnings, expected %d: %v",
					len(warnings), tt.wantWarnings, warnings)
			}
		})
	}
}

func TestCheckMerchant(t *testing.T) {
	valid := MerchantInput{
		AnnualGMV: 1000000, AOV: 70, AnnualTransactions: 35000, ProfitMargin: 15,
		AdSpend: 50000, RetargetingBudgetAllocation: 15, RetargetingCPA: 75,
		ProspectingCPA: 100, LTV: 200, PaymentsProfileOnline: 100,
		OrdersOnPayments: 100, CurrentConversionRate: 3, ShopPayUsage: 40,
	}
	if warnings := CheckMerchant(valid); len(warnings) != 0 {
		t.Errorf("expected no warnings for valid merchant, got %v", warnings)
	}

	invalid := valid
	invalid.ProfitMargin = 130
	invalid.AOV = -5
	warnings := CheckMerchant(invalid)
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestCheckScenarioCosts(t *testing.T) {
	if warnings := CheckScenarioCosts("plusSupport", 16.13, 70.95, 408.50); len(warnings) != 0 {
		t.Errorf("expected no warnings for ascending costs, got %v", warnings)
	}

	warnings := CheckScenarioCosts("audiences", 100, 50, 25)
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings for descending costs, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0], "audiences") {
		t.Errorf("warning should name the feature: %s", warnings[0])
	}
}
