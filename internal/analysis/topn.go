package analysis

import (
	"fmt"
	"sort"
	"strings"

	"tradelens/internal/model"
)

// Metric names a sortable trade metric.
type Metric string

const (
	MetricImports      Metric = "imports"
	MetricExports      Metric = "exports"
	MetricTradeBalance Metric = "tradeBalance"
	MetricTotalTrade   Metric = "totalTrade"
)

// ParseMetric maps a request parameter to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricImports, MetricExports, MetricTradeBalance, MetricTotalTrade:
		return Metric(s), nil
	}
	if strings.TrimSpace(s) == "" {
		return MetricTotalTrade, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// MetricValue reads the named metric off a record.
func MetricValue(r model.TradeRecord, m Metric) float64 {
	switch m {
	case MetricImports:
		return r.Imports
	case MetricExports:
		return r.Exports
	case MetricTradeBalance:
		return r.TradeBalance
	default:
		return r.TotalTrade
	}
}

// TopN returns a new slice holding the n largest records by value,
// in descending order. The sort is stable so ties keep their input
// order, and the input slice is never modified. n < 0 means all.
func TopN[T any](records []T, n int, value func(T) float64) []T {
	out := make([]T, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i]) > value(out[j])
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopNTrade sorts trade records by the named metric.
func TopNTrade(records []model.TradeRecord, metric Metric, n int) []model.TradeRecord {
	return TopN(records, n, func(r model.TradeRecord) float64 {
		return MetricValue(r, metric)
	})
}
