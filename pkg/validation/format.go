// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/roas-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateMode checks if the calculator mode is one of the supported modes.
func ValidateMode(mode string) error {
	if mode != constants.ModeROAS && mode != constants.ModeROI {
		return fmt.Errorf("expected mode of %s or %s, got %s",
			constants.ModeROAS, constants.ModeROI, mode)
	}
	return nil
}
