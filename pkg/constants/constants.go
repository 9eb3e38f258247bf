// Package constants provides shared constants for the roas-calculator application.
package constants

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxPercentage is the upper bound for percentage inputs
	MaxPercentage = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Calculator mode constants
const (
	// ModeROAS runs the campaign ROAS calculator
	ModeROAS = "roas"

	// ModeROI runs the merchant upgrade ROI calculator
	ModeROI = "roi"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)

// Campaign form defaults, matching the pre-filled web form values.
const (
	DefaultRevenue            = 1000.0
	DefaultAdSpend            = 100.0
	DefaultNewBuyerShare      = 10.0
	DefaultDiscountPercentage = 20.0
)

// Merchant form defaults for the ROI calculator.
const (
	DefaultAnnualGMV             = 1000000.0
	DefaultAOV                   = 70.0
	DefaultAnnualTransactions    = 35000
	DefaultProfitMargin          = 15.0
	DefaultMerchantAdSpend       = 50000.0
	DefaultRetargetingAllocation = 15.0
	DefaultRetargetingCPA        = 75.0
	DefaultProspectingCPA        = 100.0
	DefaultLTV                   = 200.0
	DefaultPaymentsProfileOnline = 100.0
	DefaultOrdersOnPayments      = 100.0
	DefaultConversionRate        = 3.0
	DefaultShopPayUsage          = 40.0
)
