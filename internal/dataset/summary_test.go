package dataset_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"tradelens/internal/config"
	"tradelens/internal/dataset"
)

func writeHeaderWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
}

func writeSummaryWorkbooks(t *testing.T, cfg *config.AppConfig) {
	t.Helper()

	header := []interface{}{
		"Fiscal Year",
		"Imports (Rs.in `000)",
		"Exports (Rs.in `000)",
		"Trade Deficit (Rs.in `000)",
		"Total Foreign Trade (Rs.in `000)",
		"Imports/Exports Ratio (Rs.in `000)",
	}

	writeHeaderWorkbook(t, filepath.Join(cfg.Data.DataDir, cfg.Data.SummaryFile), [][]interface{}{
		header,
		{"2080/081", "1,500,000", "150,000", "1,350,000", "1,650,000", "10.0"},
		{"2081/082", "1,600,000", "160,000", "1,440,000", "1,760,000", "10.0"},
	})

	writeHeaderWorkbook(t, filepath.Join(cfg.Data.DataDir, cfg.Data.GrowthFile), [][]interface{}{
		header,
		{"2080/081", "5.0", "8.0", "4.5", "5.2", "0"},
		{"2081/082", "6.7", "6.7", "6.7", "6.7", "0"},
	})
}

func TestSummaryParsesAndScales(t *testing.T) {
	cfg := testConfig(t)
	writeSummaryWorkbooks(t, cfg)
	svc := newTestService(t, cfg)

	rows, growth, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(rows) != 2 || len(growth) != 2 {
		t.Fatalf("rows=%d growth=%d, want 2 each", len(rows), len(growth))
	}

	latest := rows[1]
	if latest.FiscalYear != "2081/082" {
		t.Fatalf("latest year = %q", latest.FiscalYear)
	}
	// Monetary columns are thousands; the ratio is not.
	if latest.Imports != 1600000000 {
		t.Fatalf("Imports = %v", latest.Imports)
	}
	if latest.ImpExpRatio != 10 {
		t.Fatalf("ImpExpRatio = %v", latest.ImpExpRatio)
	}

	// Growth percentages pass through unscaled.
	if growth[1].Imports != 6.7 {
		t.Fatalf("growth Imports = %v", growth[1].Imports)
	}
}

func TestKPICardsCompareGrowthToPreviousGrowth(t *testing.T) {
	cfg := testConfig(t)
	writeSummaryWorkbooks(t, cfg)
	svc := newTestService(t, cfg)

	cards, err := svc.KPICards(context.Background())
	if err != nil {
		t.Fatalf("KPICards failed: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("got %d cards, want 4", len(cards))
	}

	imports := cards[0]
	if imports.Label != "Imports" {
		t.Fatalf("cards[0].Label = %q", imports.Label)
	}
	if imports.Value != "1.60B" {
		t.Fatalf("Imports value = %q", imports.Value)
	}
	// Import growth rose 5.0 -> 6.7, so the arrow points up.
	if !strings.Contains(imports.Delta, "▲") || imports.DeltaColor != "green" {
		t.Fatalf("Imports delta = %q color = %q", imports.Delta, imports.DeltaColor)
	}

	exports := cards[1]
	// Export growth slowed 8.0 -> 6.7 even though exports grew.
	if !strings.Contains(exports.Delta, "▼") || exports.DeltaColor != "red" {
		t.Fatalf("Exports delta = %q color = %q", exports.Delta, exports.DeltaColor)
	}
}

func TestBuildKPICardsEmpty(t *testing.T) {
	t.Parallel()

	if cards := dataset.BuildKPICards(nil, nil); cards != nil {
		t.Fatalf("no data should yield no cards, got %+v", cards)
	}
}
