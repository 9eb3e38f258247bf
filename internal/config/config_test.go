package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/roas-calculator/internal/roi"
)

func TestDefaultConfiguration(t *testing.T) {
	conf := DefaultConfiguration()

	if conf.Campaign.Revenue != 1000 {
		t.Errorf("default revenue = %v, expected 1000", conf.Campaign.Revenue)
	}
	if conf.Campaign.AdSpend != 100 {
		t.Errorf("default ad spend = %v, expected 100", conf.Campaign.AdSpend)
	}
	if conf.Merchant.AnnualTransactions != 35000 {
		t.Errorf("default transactions = %v, expected 35000", conf.Merchant.AnnualTransactions)
	}
	if conf.Merchant.CurrentConversionRate != 3.0 {
		t.Errorf("default conversion rate = %v, expected 3.0", conf.Merchant.CurrentConversionRate)
	}
	if conf.UpgradeCosts.CheckoutUpsell.High != 6125 {
		t.Errorf("default upsell high cost = %v, expected 6125", conf.UpgradeCosts.CheckoutUpsell.High)
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("default configuration should validate cleanly, got %v", warnings)
	}
}

func TestLoadConfigurationMissingFileUsesDefaults(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration error: %v", err)
	}
	if conf.Campaign.Revenue != 1000 {
		t.Errorf("expected default revenue, got %v", conf.Campaign.Revenue)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	content := `
campaign:
  revenue: 2500
  adSpend: 500
  newBuyerShare: 20
  discountPercentage: 15
merchant:
  aov: 85
logging:
  level: debug
  format: console
output:
  format: csv
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration error: %v", err)
	}

	if conf.Campaign.Revenue != 2500 {
		t.Errorf("revenue = %v, expected 2500", conf.Campaign.Revenue)
	}
	if conf.Campaign.NewBuyerShare != 20 {
		t.Errorf("newBuyerShare = %v, expected 20", conf.Campaign.NewBuyerShare)
	}
	if conf.Merchant.AOV != 85 {
		t.Errorf("aov = %v, expected 85", conf.Merchant.AOV)
	}
	// Unset fields keep their defaults.
	if conf.Merchant.AnnualTransactions != 35000 {
		t.Errorf("annualTransactions = %v, expected default 35000", conf.Merchant.AnnualTransactions)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	content := `
merchant:
  annualTransactions: 12000
  profitMargin: 22.5
`
	conf, err := LoadConfigurationFromReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader error: %v", err)
	}
	if conf.Merchant.AnnualTransactions != 12000 {
		t.Errorf("annualTransactions = %v, expected 12000", conf.Merchant.AnnualTransactions)
	}
	if conf.Merchant.ProfitMargin != 22.5 {
		t.Errorf("profitMargin = %v, expected 22.5", conf.Merchant.ProfitMargin)
	}
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("{broken yaml")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestUpgradeMetrics(t *testing.T) {
	conf := DefaultConfiguration()
	upgrades := conf.UpgradeMetrics()

	cost, ok := upgrades.Cost(roi.PlusSupport, roi.Medium)
	if !ok {
		t.Fatal("expected plus support cost to be configured")
	}
	if math.Abs(cost-70.95) > 1e-9 {
		t.Errorf("plus support Medium cost = %v, expected 70.95", cost)
	}

	// Unpriced features are absent from the map.
	if _, ok := upgrades.Cost(roi.ShopPayAOV, roi.Low); ok {
		t.Error("expected no cost for shop pay AOV")
	}
}

func TestUpgradeMetricsAllZeroOmitted(t *testing.T) {
	conf := DefaultConfiguration()
	conf.UpgradeCosts.AudiencesRetargeting = ScenarioCosts{}
	upgrades := conf.UpgradeMetrics()
	if _, ok := upgrades.Cost(roi.AudiencesRetargeting, roi.High); ok {
		t.Error("expected zeroed cost block to be treated as unpriced")
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf := DefaultConfiguration()
	conf.Campaign.NewBuyerShare = 120
	conf.Merchant.ProfitMargin = -3
	conf.UpgradeCosts.PlusSupport = ScenarioCosts{Low: 400, Medium: 70, High: 16}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 4 {
		t.Errorf("expected 4 warnings, got %d: %v", len(warnings), warnings)
	}
}
