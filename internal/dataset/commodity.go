package dataset

import (
	"log"
	"sort"

	"github.com/xuri/excelize/v2"

	"tradelens/internal/analysis"
	"tradelens/internal/model"
)

// Sheet names inside the per-year commodity workbooks.
const (
	sheetImportsByCommodity = "5_Imports_By_Commodity"
	sheetExportsByCommodity = "7_Exports_By_Commodity"
	sheetImportsByPartner   = "4_Imports_By_Commodity_Partner"
	sheetExportsByPartner   = "6_Exports_By_Commodity_Partner"
)

// commodityYearData holds one fiscal year's merged commodity views.
type commodityYearData struct {
	Commodities []model.CommodityRecord
	Countries   []model.CommodityCountryRecord
}

// sheetRows reads a sheet and skips the two banner rows above the
// data. A missing sheet logs a warning and reads as empty.
func sheetRows(f *excelize.File, sheet string) [][]string {
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Printf("sheet %q not found: %v", sheet, err)
		return nil
	}
	if len(rows) <= 2 {
		return nil
	}
	return rows[2:]
}

// parseCommodityWorkbook merges the import and export commodity
// sheets by HS code and the partner sheets by HS code, description
// and partner country. A record present on only one side gets zeros
// for the other.
func parseCommodityWorkbook(f *excelize.File) *commodityYearData {
	data := &commodityYearData{}

	// Commodity sheets are positional: HS code, description, unit,
	// quantity, value, revenue (imports only).
	byCode := make(map[string]*model.CommodityRecord)
	var codeOrder []string

	for _, row := range sheetRows(f, sheetImportsByCommodity) {
		code, desc := cell(row, 0), cell(row, 1)
		if code == "" || desc == "" {
			continue
		}
		rec := &model.CommodityRecord{
			HSCode:         code,
			Description:    desc,
			Unit:           cell(row, 2),
			ImportQuantity: parseFloat(cell(row, 3)),
			ImportValue:    parseFloat(cell(row, 4)) * unitScale,
			ImportRevenue:  parseFloat(cell(row, 5)) * unitScale,
		}
		if _, ok := byCode[code]; !ok {
			codeOrder = append(codeOrder, code)
		}
		byCode[code] = rec
	}

	for _, row := range sheetRows(f, sheetExportsByCommodity) {
		code, desc := cell(row, 0), cell(row, 1)
		if code == "" || desc == "" {
			continue
		}
		if rec, ok := byCode[code]; ok {
			rec.ExportQuantity = parseFloat(cell(row, 3))
			rec.ExportValue = parseFloat(cell(row, 4)) * unitScale
			continue
		}
		byCode[code] = &model.CommodityRecord{
			HSCode:         code,
			Description:    desc,
			Unit:           cell(row, 2),
			ExportQuantity: parseFloat(cell(row, 3)),
			ExportValue:    parseFloat(cell(row, 4)) * unitScale,
		}
		codeOrder = append(codeOrder, code)
	}

	for _, code := range codeOrder {
		rec := *byCode[code]
		rec.TradeBalance = analysis.TradeBalance(rec.ImportValue, rec.ExportValue)
		rec.TotalTrade = analysis.TotalTrade(rec.ImportValue, rec.ExportValue)
		// Rankings only care about codes with actual activity.
		if rec.ImportValue > 0 || rec.ExportValue > 0 {
			data.Commodities = append(data.Commodities, rec)
		}
	}

	// Partner sheets add a country column after the description.
	byKey := make(map[string]*model.CommodityCountryRecord)
	var keyOrder []string

	for _, row := range sheetRows(f, sheetImportsByPartner) {
		code, desc, country := cell(row, 0), cell(row, 1), cell(row, 2)
		if code == "" || desc == "" || country == "" {
			continue
		}
		rec := &model.CommodityCountryRecord{
			HSCode:         code,
			Description:    desc,
			Country:        country,
			Unit:           cell(row, 3),
			ImportQuantity: parseFloat(cell(row, 4)),
			ImportValue:    parseFloat(cell(row, 5)) * unitScale,
			ImportRevenue:  parseFloat(cell(row, 6)) * unitScale,
		}
		key := rec.MergeKey()
		if _, ok := byKey[key]; !ok {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = rec
	}

	for _, row := range sheetRows(f, sheetExportsByPartner) {
		code, desc, country := cell(row, 0), cell(row, 1), cell(row, 2)
		if code == "" || desc == "" || country == "" {
			continue
		}
		rec := model.CommodityCountryRecord{
			HSCode:      code,
			Description: desc,
			Country:     country,
		}
		key := rec.MergeKey()
		if existing, ok := byKey[key]; ok {
			existing.ExportQuantity = parseFloat(cell(row, 4))
			existing.ExportValue = parseFloat(cell(row, 5)) * unitScale
			continue
		}
		rec.Unit = cell(row, 3)
		rec.ExportQuantity = parseFloat(cell(row, 4))
		rec.ExportValue = parseFloat(cell(row, 5)) * unitScale
		byKey[key] = &rec
		keyOrder = append(keyOrder, key)
	}

	for _, key := range keyOrder {
		rec := *byKey[key]
		rec.TradeBalance = analysis.TradeBalance(rec.ImportValue, rec.ExportValue)
		rec.TotalTrade = analysis.TotalTrade(rec.ImportValue, rec.ExportValue)
		rec.Competitiveness = analysis.Competitiveness(rec.ExportValue, rec.ImportValue)
		data.Countries = append(data.Countries, rec)
	}

	return data
}

// uniqueSorted collects the distinct values produced by pick, sorted.
func uniqueSorted(n int, pick func(int) string) []string {
	seen := make(map[string]bool, n)
	var out []string
	for i := 0; i < n; i++ {
		v := pick(i)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
