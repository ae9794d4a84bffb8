package dataset

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"tradelens/internal/model"
)

// nameAliases lists the header spellings seen for the entity column,
// tried in priority order.
var nameAliases = map[model.View][]string{
	model.ViewCountry: {"Countries", "countries", "Country", "country"},
	model.ViewProduct: {"Products", "products", "Product", "product"},
	model.ViewOffice:  {"Custom_offices", "custom_offices", "Office", "office"},
}

// WideTable is a parsed wide-format workbook: one row per entity with
// paired "{FY}_import"/"{FY}_export" columns per fiscal year.
type WideTable struct {
	headers  []string
	rows     [][]string
	colIndex map[string]int
	years    []string // ascending
}

func parseWideTable(f *excelize.File) (*WideTable, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty sheet")
	}

	header := rows[0]
	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	// Fiscal years come from the paired value columns.
	seen := make(map[string]bool)
	var years []string
	for col := range colIndex {
		var year string
		if y, ok := strings.CutSuffix(col, "_import"); ok {
			year = y
		} else if y, ok := strings.CutSuffix(col, "_export"); ok {
			year = y
		} else {
			continue
		}
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	sort.Strings(years)

	var data [][]string
	if len(rows) > 1 {
		data = rows[1:]
	}

	return &WideTable{
		headers:  header,
		rows:     data,
		colIndex: colIndex,
		years:    years,
	}, nil
}

// FiscalYears returns the years in ascending order, for chart axes.
func (t *WideTable) FiscalYears() []string {
	out := make([]string, len(t.years))
	copy(out, t.years)
	return out
}

// FiscalYearsDesc returns the years newest first, for dropdowns.
func (t *WideTable) FiscalYearsDesc() []string {
	out := t.FiscalYears()
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// HasYear reports whether the table carries columns for a year.
func (t *WideTable) HasYear(fiscalYear string) bool {
	for _, y := range t.years {
		if y == fiscalYear {
			return true
		}
	}
	return false
}

func (t *WideTable) col(aliases ...string) int {
	for _, a := range aliases {
		if idx, ok := t.colIndex[a]; ok {
			return idx
		}
	}
	for _, a := range aliases {
		for col, idx := range t.colIndex {
			if strings.EqualFold(col, a) {
				return idx
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseFloat reads a numeric cell, tolerating thousands separators.
// Unparseable cells read as zero.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// unitScale converts the sheets' thousands of rupees to rupees.
const unitScale = 1000

// RawYear extracts one fiscal year's entries in sheet order. Rows
// without an entity name are skipped; the count of skipped rows is
// returned alongside. Zero-zero rows are kept here, callers filter.
func (t *WideTable) RawYear(view model.View, fiscalYear string) ([]model.RawEntry, int) {
	nameIdx := t.col(nameAliases[view]...)
	impIdx := t.col(fiscalYear + "_import")
	expIdx := t.col(fiscalYear + "_export")

	entries := make([]model.RawEntry, 0, len(t.rows))
	skipped := 0

	for _, row := range t.rows {
		name := cell(row, nameIdx)
		if name == "" {
			skipped++
			continue
		}
		entries = append(entries, model.RawEntry{
			Name:    name,
			Imports: parseFloat(cell(row, impIdx)) * unitScale,
			Exports: parseFloat(cell(row, expIdx)) * unitScale,
		})
	}

	return entries, skipped
}

// FindEntry locates an entity row by exact, case-insensitive name and
// returns its entries for the given year.
func (t *WideTable) FindEntry(view model.View, name, fiscalYear string) (model.RawEntry, bool) {
	entries, _ := t.RawYear(view, fiscalYear)
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return model.RawEntry{}, false
}
