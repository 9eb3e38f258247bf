// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/roas-calculator/internal/roi"
	"github.com/iwvelando/roas-calculator/pkg/mathutil"
)

// FindRow finds a feature's row in a summary.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(summary roi.Summary, feature roi.Feature) *roi.SummaryRow {
	for i := range summary.Rows {
		if summary.Rows[i].Feature == feature {
			return &summary.Rows[i]
		}
	}
	return nil
}

// ApproxEqual reports whether two currency values agree to within a cent.
func ApproxEqual(a, b float64) bool {
	return mathutil.WithinTolerance(a, b, 0.01)
}
