package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"tradelens/internal/config"
	"tradelens/internal/model"
)

func writeCommodityWorkbook(t *testing.T, cfg *config.AppConfig, fiscalYear string) {
	t.Helper()

	f := excelize.NewFile()

	addSheet := func(name string, rows [][]interface{}) {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet %s failed: %v", name, err)
		}
		// Two banner rows precede the data.
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+3)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
	}

	addSheet("5_Imports_By_Commodity", [][]interface{}{
		{"2710", "Petroleum oils", "KL", "100", "900", "45"},
		{"9999", "Dormant item", "KG", "0", "0", "0"},
		{"", "No code", "KG", "1", "1", "1"},
	})
	addSheet("7_Exports_By_Commodity", [][]interface{}{
		{"2710", "Petroleum oils", "KL", "5", "10"},
		{"0902", "Tea", "KG", "20", "50"},
	})
	addSheet("4_Imports_By_Commodity_Partner", [][]interface{}{
		{"2710", "Petroleum oils", "India", "KL", "80", "700", "35"},
	})
	addSheet("6_Exports_By_Commodity_Partner", [][]interface{}{
		{"2710", "Petroleum oils", "India", "KL", "4", "8"},
		{"0902", "Tea", "Germany", "KG", "20", "50"},
	})

	dir := filepath.Join(cfg.Data.DataDir, cfg.Data.CommoditySubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	name := model.FiscalYear(fiscalYear).FileBase() + ".xlsx"
	if err := f.SaveAs(filepath.Join(dir, name)); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
}

func TestCommoditiesMergeImportAndExport(t *testing.T) {
	cfg := testConfig(t)
	writeCommodityWorkbook(t, cfg, "2081/082")
	svc := newTestService(t, cfg)

	records, err := svc.Commodities(context.Background(), "2081/082")
	if err != nil {
		t.Fatalf("Commodities failed: %v", err)
	}

	// The dormant zero-zero code and the codeless row drop out; the
	// export-only code survives with zero imports.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}

	oil := records[0]
	if oil.HSCode != "2710" {
		t.Fatalf("records[0] = %q", oil.HSCode)
	}
	if oil.ImportValue != 900000 || oil.ImportRevenue != 45000 {
		t.Fatalf("oil imports = %+v", oil)
	}
	if oil.ExportValue != 10000 || oil.ExportQuantity != 5 {
		t.Fatalf("oil exports = %+v", oil)
	}
	if oil.TradeBalance != 10000-900000 || oil.TotalTrade != 910000 {
		t.Fatalf("oil derived = %+v", oil)
	}

	tea := records[1]
	if tea.HSCode != "0902" || tea.ImportValue != 0 || tea.ExportValue != 50000 {
		t.Fatalf("tea = %+v", tea)
	}
}

func TestCommodityCountriesMerge(t *testing.T) {
	cfg := testConfig(t)
	writeCommodityWorkbook(t, cfg, "2081/082")
	svc := newTestService(t, cfg)

	records, err := svc.CommodityCountries(context.Background(), "2081/082")
	if err != nil {
		t.Fatalf("CommodityCountries failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}

	oil := records[0]
	if oil.Country != "India" {
		t.Fatalf("records[0].Country = %q", oil.Country)
	}
	if oil.ImportValue != 700000 || oil.ExportValue != 8000 {
		t.Fatalf("oil = %+v", oil)
	}
	want := 8000.0 / 708000.0 * 100
	if oil.Competitiveness != want {
		t.Fatalf("Competitiveness = %v, want %v", oil.Competitiveness, want)
	}

	// Export-only partner records are kept even with zero imports.
	tea := records[1]
	if tea.Country != "Germany" || tea.ImportValue != 0 || tea.ExportValue != 50000 {
		t.Fatalf("tea = %+v", tea)
	}
}

func TestCommodityFilters(t *testing.T) {
	cfg := testConfig(t)
	writeCommodityWorkbook(t, cfg, "2081/082")
	svc := newTestService(t, cfg)

	commodities, countries, err := svc.CommodityFilters(context.Background(), "2081/082")
	if err != nil {
		t.Fatalf("CommodityFilters failed: %v", err)
	}
	if len(commodities) != 2 || commodities[0] != "Petroleum oils" || commodities[1] != "Tea" {
		t.Fatalf("commodities = %v", commodities)
	}
	if len(countries) != 2 || countries[0] != "Germany" || countries[1] != "India" {
		t.Fatalf("countries = %v", countries)
	}
}

func TestCommodityYearLists(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg)

	years := svc.CommodityYears()
	if len(years) == 0 || years[0] != "2081/082" {
		t.Fatalf("commodity years = %v", years)
	}

	partner := svc.CommodityCountryYears()
	if len(partner) != 4 {
		t.Fatalf("partner years = %v, want the first 4", partner)
	}
	if partner[0] != years[0] {
		t.Fatalf("partner years should lead with the newest year")
	}
}
