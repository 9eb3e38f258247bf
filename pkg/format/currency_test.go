package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Small amount", 2.0, "$2.00"},
		{"Thousands separator", 73500.0, "$73,500.00"},
		{"Large amount", 490000.0, "$490,000.00"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Zero", 0.0, "$0.00"},
		{"Fractional cents round in Sprintf", 11025.004, "$11,025.00"},
		{"Million-scale grouping", 1234567.89, "$1,234,567.89"},
		{"Grouping boundary", 1000.0, "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.input); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	if got := NumericCurrency(-73500.0); got != "-73,500.00" {
		t.Errorf("NumericCurrency(-73500) = %q, expected %q", got, "-73,500.00")
	}
	if got := NumericCurrency(10.0); got != "10.00" {
		t.Errorf("NumericCurrency(10) = %q, expected %q", got, "10.00")
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(10.0); got != "10.00x" {
		t.Errorf("Ratio(10) = %q, expected %q", got, "10.00x")
	}
	if got := Ratio(9.80392); got != "9.80x" {
		t.Errorf("Ratio(9.80392) = %q, expected %q", got, "9.80x")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(3.0); got != "3.0%" {
		t.Errorf("Percent(3) = %q, expected %q", got, "3.0%")
	}
	if got := Percent(0.5); got != "0.5%" {
		t.Errorf("Percent(0.5) = %q, expected %q", got, "0.5%")
	}
}

func TestCount(t *testing.T) {
	if got := Count(1050.0); got != "1,050" {
		t.Errorf("Count(1050) = %q, expected %q", got, "1,050")
	}
	if got := Count(35000.4); got != "35,000" {
		t.Errorf("Count(35000.4) = %q, expected %q", got, "35,000")
	}
}
