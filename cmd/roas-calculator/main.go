package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iwvelando/roas-calculator/internal/campaign"
	"github.com/iwvelando/roas-calculator/internal/config"
	"github.com/iwvelando/roas-calculator/internal/roi"
	"github.com/iwvelando/roas-calculator/pkg/constants"
	"github.com/iwvelando/roas-calculator/pkg/output"
	"github.com/iwvelando/roas-calculator/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// promptFloat reads one number from the reader, falling back to the default
// on empty input.
func promptFloat(reader *bufio.Reader, label string, defaultValue float64) (float64, error) {
	fmt.Printf("%s [%.2f]: ", label, defaultValue)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", trimmed, err)
	}
	return value, nil
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	mode := flag.String("mode", constants.ModeROAS, "calculator to run: roas, roi")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	interactive := flag.Bool("interactive", false, "prompt for campaign inputs instead of using config values")
	scenarioFlag := flag.String("scenario", "Medium", "growth scenario for roi mode: Low, Medium, High")
	revenue := flag.Float64("revenue", -1, "total campaign revenue (roas mode)")
	adSpend := flag.Float64("ad-spend", -1, "total ad spend (roas mode)")
	newBuyerShare := flag.Float64("new-buyer-share", -1, "share of new buyers in percent (roas mode)")
	discountPercentage := flag.Float64("discount", -1, "new buyer discount in percent (roas mode)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := validation.ValidateMode(*mode); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Apply campaign input overrides from flags.
	if *revenue >= 0 {
		conf.Campaign.Revenue = *revenue
	}
	if *adSpend >= 0 {
		conf.Campaign.AdSpend = *adSpend
	}
	if *newBuyerShare >= 0 {
		conf.Campaign.NewBuyerShare = *newBuyerShare
	}
	if *discountPercentage >= 0 {
		conf.Campaign.DiscountPercentage = *discountPercentage
	}

	if *interactive && *mode == constants.ModeROAS {
		if err := promptCampaign(&conf.Campaign); err != nil {
			logger.Fatal("failed to read campaign inputs",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	switch *mode {
	case constants.ModeROAS:
		runROAS(conf, outputFormat)
	case constants.ModeROI:
		if err := runROI(conf, *scenarioFlag, outputFormat); err != nil {
			logger.Fatal("failed to compute upgrade impacts",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

func promptCampaign(c *campaign.Campaign) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Shop Campaign ROAS Calculator")
	fmt.Println(strings.Repeat("-", 30))

	var err error
	if c.Revenue, err = promptFloat(reader, "Enter Total Revenue ($)", c.Revenue); err != nil {
		return err
	}
	if c.AdSpend, err = promptFloat(reader, "Enter Ad Spend ($)", c.AdSpend); err != nil {
		return err
	}
	if c.NewBuyerShare, err = promptFloat(reader, "Enter Share of New Buyers (%)", c.NewBuyerShare); err != nil {
		return err
	}
	if c.DiscountPercentage, err = promptFloat(reader, "Enter Discount Percentage for New Buyers (%)", c.DiscountPercentage); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func runROAS(conf *config.Configuration, outputFormat string) {
	breakdown := campaign.GetBreakdown(conf.Campaign)
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyBreakdown(breakdown)
	case constants.OutputFormatCSV:
		output.CsvBreakdown(breakdown)
	}
}

func runROI(conf *config.Configuration, scenarioName string, outputFormat string) error {
	scenario, err := roi.ParseScenario(scenarioName)
	if err != nil {
		return err
	}

	impacts, err := roi.EstimateAll(conf.Merchant, scenario)
	if err != nil {
		return err
	}

	summary, err := roi.GetSummary(conf.Merchant, conf.UpgradeMetrics())
	if err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettySummary(summary)
		fmt.Println()
		output.PrettyImpacts(scenario, impacts)
	case constants.OutputFormatCSV:
		output.CsvSummary(summary)
	}
	return nil
}
