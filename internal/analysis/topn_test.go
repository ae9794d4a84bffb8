package analysis_test

import (
	"testing"

	"tradelens/internal/analysis"
	"tradelens/internal/model"
)

func sampleRecords() []model.TradeRecord {
	return []model.TradeRecord{
		{Name: "India", TotalTrade: 900, Imports: 800},
		{Name: "China", TotalTrade: 500, Imports: 500},
		{Name: "USA", TotalTrade: 500, Imports: 100},
		{Name: "Japan", TotalTrade: 200, Imports: 150},
	}
}

func TestTopNTradeDescending(t *testing.T) {
	t.Parallel()

	top := analysis.TopNTrade(sampleRecords(), analysis.MetricTotalTrade, 3)
	if len(top) != 3 {
		t.Fatalf("len=%d, want 3", len(top))
	}
	if top[0].Name != "India" {
		t.Fatalf("top[0]=%q, want India", top[0].Name)
	}
	// Ties keep their input order.
	if top[1].Name != "China" || top[2].Name != "USA" {
		t.Fatalf("tie order broken: %q, %q", top[1].Name, top[2].Name)
	}
}

func TestTopNTradeBounds(t *testing.T) {
	t.Parallel()

	records := sampleRecords()

	if got := analysis.TopNTrade(records, analysis.MetricImports, 100); len(got) != len(records) {
		t.Fatalf("n beyond len: got %d records, want %d", len(got), len(records))
	}
	if got := analysis.TopNTrade(records, analysis.MetricImports, -1); len(got) != len(records) {
		t.Fatalf("n<0: got %d records, want %d", len(got), len(records))
	}
	if got := analysis.TopNTrade(records, analysis.MetricImports, 0); len(got) != 0 {
		t.Fatalf("n=0: got %d records, want 0", len(got))
	}
}

func TestTopNDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	analysis.TopNTrade(records, analysis.MetricImports, 2)

	if records[0].Name != "India" || records[3].Name != "Japan" {
		t.Fatalf("input order changed: %q ... %q", records[0].Name, records[3].Name)
	}
}

func TestParseMetric(t *testing.T) {
	t.Parallel()

	m, err := analysis.ParseMetric("")
	if err != nil || m != analysis.MetricTotalTrade {
		t.Fatalf("empty metric: got %q, %v", m, err)
	}
	if _, err := analysis.ParseMetric("tradeBalance"); err != nil {
		t.Fatalf("tradeBalance should parse: %v", err)
	}
	if _, err := analysis.ParseMetric("bogus"); err == nil {
		t.Fatalf("bogus metric should fail")
	}
}
