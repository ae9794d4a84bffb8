package analysis

import (
	"fmt"
	"math"
)

// FormatValue renders a monetary value with a K/M/B suffix and three
// decimal places. NaN and zero render as the bare string "0". The
// sign precedes the scaled magnitude: -2500000 -> "-2.500M".
func FormatValue(v float64) string {
	if math.IsNaN(v) || v == 0 {
		return "0"
	}

	sign := ""
	abs := v
	if v < 0 {
		sign = "-"
		abs = -v
	}

	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%s%.3fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.3fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.3fK", sign, abs/1e3)
	default:
		return fmt.Sprintf("%s%.3f", sign, abs)
	}
}

// FormatValue2 is the two-decimal variant used by the summary cards.
// NaN renders as "0.00".
func FormatValue2(v float64) string {
	if math.IsNaN(v) {
		return "0.00"
	}

	sign := ""
	abs := v
	if v < 0 {
		sign = "-"
		abs = -v
	}

	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%s%.2fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.2fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.2fK", sign, abs/1e3)
	default:
		return fmt.Sprintf("%s%.2f", sign, abs)
	}
}
