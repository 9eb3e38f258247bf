// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/roas-calculator/internal/campaign"
	"github.com/iwvelando/roas-calculator/internal/roi"
	"github.com/iwvelando/roas-calculator/pkg/constants"
	"github.com/iwvelando/roas-calculator/pkg/mathutil"
	"github.com/iwvelando/roas-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for roas-calculator.
type Configuration struct {
	Campaign     campaign.Campaign   `yaml:"campaign,omitempty"`
	Merchant     roi.MerchantMetrics `yaml:"merchant,omitempty"`
	UpgradeCosts UpgradeCosts        `yaml:"upgradeCosts,omitempty"`
	Logging      LoggingConfig       `yaml:"logging,omitempty"`
	Output       OutputConfig        `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ScenarioCosts holds one feature's upgrade cost per growth scenario.
type ScenarioCosts struct {
	Low    float64 `json:"low" yaml:"low"`
	Medium float64 `json:"medium" yaml:"medium"`
	High   float64 `json:"high" yaml:"high"`
}

// UpgradeCosts holds the configured upgrade costs for the priced features.
type UpgradeCosts struct {
	CheckoutCustomization ScenarioCosts `json:"checkoutCustomization" yaml:"checkoutCustomization,omitempty"`
	CheckoutUpsell        ScenarioCosts `json:"checkoutUpsell" yaml:"checkoutUpsell,omitempty"`
	PlusSupport           ScenarioCosts `json:"plusSupport" yaml:"plusSupport,omitempty"`
	AudiencesRetargeting  ScenarioCosts `json:"audiencesRetargeting" yaml:"audiencesRetargeting,omitempty"`
}

// DefaultConfiguration returns the configuration pre-filled with the same
// defaults the web form uses.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Campaign: campaign.Campaign{
			Revenue:            constants.DefaultRevenue,
			AdSpend:            constants.DefaultAdSpend,
			NewBuyerShare:      constants.DefaultNewBuyerShare,
			DiscountPercentage: constants.DefaultDiscountPercentage,
		},
		Merchant: roi.MerchantMetrics{
			AnnualGMV:                   constants.DefaultAnnualGMV,
			AOV:                         constants.DefaultAOV,
			AnnualTransactions:          constants.DefaultAnnualTransactions,
			ProfitMargin:                constants.DefaultProfitMargin,
			AdSpend:                     constants.DefaultMerchantAdSpend,
			RetargetingBudgetAllocation: constants.DefaultRetargetingAllocation,
			RetargetingCPA:              constants.DefaultRetargetingCPA,
			ProspectingCPA:              constants.DefaultProspectingCPA,
			LTV:                         constants.DefaultLTV,
			PaymentsProfileOnline:       constants.DefaultPaymentsProfileOnline,
			OrdersOnPayments:            constants.DefaultOrdersOnPayments,
			CurrentConversionRate:       constants.DefaultConversionRate,
			ShopPayUsage:                constants.DefaultShopPayUsage,
		},
		UpgradeCosts: UpgradeCosts{
			CheckoutCustomization: ScenarioCosts{Low: 125, Medium: 378.75, High: 650.19},
			CheckoutUpsell:        ScenarioCosts{Low: 1531.25, Medium: 3062.50, High: 6125},
			PlusSupport:           ScenarioCosts{Low: 16.13, Medium: 70.95, High: 408.50},
			AudiencesRetargeting:  ScenarioCosts{Low: 68, Medium: 898, High: 2746},
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, merged over the defaults. A missing file yields the
// defaults without error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return DefaultConfiguration(), nil
	}
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfiguration(), nil
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	configuration := DefaultConfiguration()
	err := viper.Unmarshal(configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return configuration, nil
}

// LoadConfigurationFromReader loads YAML configuration from an arbitrary
// reader, merged over the defaults. Used by the web server for uploaded
// configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	configuration := DefaultConfiguration()
	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return configuration, nil
}

// UpgradeMetrics converts the configured costs into the roi package's map
// representation.
func (c *Configuration) UpgradeMetrics() roi.UpgradeMetrics {
	costs := map[roi.Feature]map[roi.GrowthScenario]float64{
		roi.CheckoutCustomization: c.UpgradeCosts.CheckoutCustomization.toMap(),
		roi.CheckoutUpsell:        c.UpgradeCosts.CheckoutUpsell.toMap(),
		roi.PlusSupport:           c.UpgradeCosts.PlusSupport.toMap(),
		roi.AudiencesRetargeting:  c.UpgradeCosts.AudiencesRetargeting.toMap(),
	}
	for feature, scenarios := range costs {
		if scenarios == nil {
			delete(costs, feature)
		}
	}
	return roi.UpgradeMetrics{Costs: costs}
}

func (s ScenarioCosts) toMap() map[roi.GrowthScenario]float64 {
	if mathutil.IsZero(s.Low) && mathutil.IsZero(s.Medium) && mathutil.IsZero(s.High) {
		return nil
	}
	return map[roi.GrowthScenario]float64{
		roi.Low:    s.Low,
		roi.Medium: s.Medium,
		roi.High:   s.High,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. All checks are advisory; computations proceed regardless.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	warnings = append(warnings, validation.CheckCampaign(validation.CampaignInput{
		Revenue:            c.Campaign.Revenue,
		AdSpend:            c.Campaign.AdSpend,
		NewBuyerShare:      c.Campaign.NewBuyerShare,
		DiscountPercentage: c.Campaign.DiscountPercentage,
	})...)

	warnings = append(warnings, validation.CheckMerchant(validation.MerchantInput{
		AnnualGMV:                   c.Merchant.AnnualGMV,
		AOV:                         c.Merchant.AOV,
		AnnualTransactions:          c.Merchant.AnnualTransactions,
		ProfitMargin:                c.Merchant.ProfitMargin,
		AdSpend:                     c.Merchant.AdSpend,
		RetargetingBudgetAllocation: c.Merchant.RetargetingBudgetAllocation,
		RetargetingCPA:              c.Merchant.RetargetingCPA,
		ProspectingCPA:              c.Merchant.ProspectingCPA,
		LTV:                         c.Merchant.LTV,
		PaymentsProfileOnline:       c.Merchant.PaymentsProfileOnline,
		OrdersOnPayments:            c.Merchant.OrdersOnPayments,
		CurrentConversionRate:       c.Merchant.CurrentConversionRate,
		ShopPayUsage:                c.Merchant.ShopPayUsage,
	})...)

	for _, priced := range []struct {
		name  string
		costs ScenarioCosts
	}{
		{"checkoutCustomization", c.UpgradeCosts.CheckoutCustomization},
		{"checkoutUpsell", c.UpgradeCosts.CheckoutUpsell},
		{"plusSupport", c.UpgradeCosts.PlusSupport},
		{"audiencesRetargeting", c.UpgradeCosts.AudiencesRetargeting},
	} {
		warnings = append(warnings, validation.CheckScenarioCosts(priced.name, priced.costs.Low, priced.costs.Medium, priced.costs.High)...)
	}

	return warnings
}
