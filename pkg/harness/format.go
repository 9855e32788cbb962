package harness

import (
	"fmt"
	"math"
)

// formatMillis renders a duration measured in fractional milliseconds with a
// unit and precision chosen by magnitude.
func formatMillis(ms float64) string {
	switch {
	case math.IsInf(ms, 0) || math.IsNaN(ms):
		return "Infinity"
	case ms >= 1000:
		return fmt.Sprintf("%.2fs", ms/1000)
	case ms >= 100:
		return fmt.Sprintf("%.1fms", ms)
	case ms >= 1:
		return fmt.Sprintf("%.2fms", ms)
	case ms >= 0.001:
		return fmt.Sprintf("%.2fµs", ms*1000)
	default:
		return fmt.Sprintf("%.0fns", ms*1e6)
	}
}

// formatOps renders a throughput figure, compressing large values with K/M
// suffixes.
func formatOps(ops float64) string {
	switch {
	case math.IsInf(ops, 0) || math.IsNaN(ops):
		return "Infinity"
	case ops >= 1e6:
		return fmt.Sprintf("%.1fM", ops/1e6)
	case ops >= 1e3:
		return fmt.Sprintf("%.1fK", ops/1e3)
	case ops >= 100:
		return fmt.Sprintf("%.0f", ops)
	default:
		return fmt.Sprintf("%.2f", ops)
	}
}

// formatComparison renders the trailing comparison column for one metric
// from its percent difference and speedup factor. Positive pct always means
// the second candidate did better.
func formatComparison(pct, factor float64) string {
	if pct == 0 {
		return "no difference"
	}

	word := "faster"
	if pct < 0 {
		word = "slower"
		pct = -pct
	}

	pctStr := fmt.Sprintf("%.1f%%", pct)
	if math.IsInf(pct, 0) {
		pctStr = "Infinity%"
	}
	factorStr := fmt.Sprintf("%.2fx", factor)
	if math.IsInf(factor, 0) {
		factorStr = "Infinityx"
	}

	return fmt.Sprintf("%s %s (%s)", pctStr, word, factorStr)
}
