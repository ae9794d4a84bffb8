package analysis

// TradeBalance returns exports minus imports.
func TradeBalance(imports, exports float64) float64 {
	return exports - imports
}

// TotalTrade returns imports plus exports.
func TotalTrade(imports, exports float64) float64 {
	return imports + exports
}

// GrowthPct returns the percentage change from previous to current.
// A zero or negative baseline yields 0 rather than a division blowup.
func GrowthPct(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	return 0
}

// CoverageRatio returns exports as a percentage of imports, 0 when
// there are no imports.
func CoverageRatio(exports, imports float64) float64 {
	if imports == 0 {
		return 0
	}
	return exports / imports * 100
}

// Competitiveness returns the export share of total trade clamped to
// [0, 100]. Both sides zero yields 0.
func Competitiveness(exports, imports float64) float64 {
	total := imports + exports
	if total == 0 {
		return 0
	}
	pct := exports / total * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
