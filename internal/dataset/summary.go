package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"tradelens/internal/analysis"
	"tradelens/internal/model"
)

// Summary workbook column headers. The backtick spelling comes from
// the source sheets.
const (
	colFiscalYear   = "Fiscal Year"
	colImports      = "Imports (Rs.in `000)"
	colExports      = "Exports (Rs.in `000)"
	colTradeDeficit = "Trade Deficit (Rs.in `000)"
	colTotalTrade   = "Total Foreign Trade (Rs.in `000)"
	colImpExpRatio  = "Imports/Exports Ratio (Rs.in `000)"
)

// summaryBundle pairs the totals and growth rows in the cache.
type summaryBundle struct {
	rows   []model.SummaryRow
	growth []model.GrowthRow
}

// headerRows reads the first sheet as header-keyed rows.
func headerRows(f *excelize.File) ([]map[string]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				m[strings.TrimSpace(col)] = strings.TrimSpace(row[i])
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// parseSummaryWorkbook reads the fiscal-year totals. Monetary columns
// are in thousands and scaled to rupees; the ratio column is not.
func parseSummaryWorkbook(f *excelize.File) ([]model.SummaryRow, error) {
	rows, err := headerRows(f)
	if err != nil {
		return nil, err
	}

	summary := make([]model.SummaryRow, 0, len(rows))
	for _, row := range rows {
		fy := row[colFiscalYear]
		if fy == "" {
			continue
		}
		summary = append(summary, model.SummaryRow{
			FiscalYear:   fy,
			Imports:      parseFloat(row[colImports]) * unitScale,
			Exports:      parseFloat(row[colExports]) * unitScale,
			TradeDeficit: parseFloat(row[colTradeDeficit]) * unitScale,
			TotalTrade:   parseFloat(row[colTotalTrade]) * unitScale,
			ImpExpRatio:  parseFloat(row[colImpExpRatio]),
		})
	}
	return summary, nil
}

// parseGrowthWorkbook reads the year-over-year percentages. These are
// already percentages, no scaling.
func parseGrowthWorkbook(f *excelize.File) ([]model.GrowthRow, error) {
	rows, err := headerRows(f)
	if err != nil {
		return nil, err
	}

	growth := make([]model.GrowthRow, 0, len(rows))
	for _, row := range rows {
		fy := row[colFiscalYear]
		if fy == "" {
			continue
		}
		growth = append(growth, model.GrowthRow{
			FiscalYear:   fy,
			Imports:      parseFloat(row[colImports]),
			Exports:      parseFloat(row[colExports]),
			TradeDeficit: parseFloat(row[colTradeDeficit]),
			TotalTrade:   parseFloat(row[colTotalTrade]),
			ImpExpRatio:  parseFloat(row[colImpExpRatio]),
		})
	}
	return growth, nil
}

// BuildKPICards derives the headline cards for the latest fiscal
// year. The arrow compares the latest growth against the previous
// year's growth, not against zero.
func BuildKPICards(summary []model.SummaryRow, growth []model.GrowthRow) []model.KPICard {
	if len(summary) == 0 || len(growth) == 0 {
		return nil
	}

	current := summary[len(summary)-1]
	currentGrowth := growth[len(growth)-1]
	var previousGrowth model.GrowthRow
	if len(growth) > 1 {
		previousGrowth = growth[len(growth)-2]
	}

	cards := []struct {
		label          string
		value          string
		growth, before float64
	}{
		{"Imports", analysis.FormatValue2(current.Imports), currentGrowth.Imports, previousGrowth.Imports},
		{"Exports", analysis.FormatValue2(current.Exports), currentGrowth.Exports, previousGrowth.Exports},
		{"Trade Deficit", analysis.FormatValue2(current.TradeDeficit), currentGrowth.TradeDeficit, previousGrowth.TradeDeficit},
		{"Imp/Exp Ratio", analysis.FormatValue2(current.ImpExpRatio), currentGrowth.ImpExpRatio, previousGrowth.ImpExpRatio},
	}

	out := make([]model.KPICard, 0, len(cards))
	for _, c := range cards {
		arrow := "▼"
		color := "red"
		if c.growth > c.before {
			arrow = "▲"
			color = "green"
		}
		out = append(out, model.KPICard{
			Label:      c.label,
			Value:      c.value,
			Delta:      fmt.Sprintf("%.2f%%%s", c.growth, arrow),
			DeltaColor: color,
		})
	}
	return out
}
