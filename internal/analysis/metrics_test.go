package analysis_test

import (
	"testing"

	"tradelens/internal/analysis"
)

func TestTradeBalanceAndTotal(t *testing.T) {
	t.Parallel()

	if got := analysis.TradeBalance(100, 40); got != -60 {
		t.Fatalf("TradeBalance(100,40)=%v, want -60", got)
	}
	if got := analysis.TotalTrade(100, 40); got != 140 {
		t.Fatalf("TotalTrade(100,40)=%v, want 140", got)
	}
}

func TestGrowthPct(t *testing.T) {
	t.Parallel()

	if got := analysis.GrowthPct(110, 100); got != 10 {
		t.Fatalf("GrowthPct(110,100)=%v, want 10", got)
	}
	if got := analysis.GrowthPct(90, 100); got != -10 {
		t.Fatalf("GrowthPct(90,100)=%v, want -10", got)
	}
	// A zero baseline never divides.
	if got := analysis.GrowthPct(50, 0); got != 0 {
		t.Fatalf("GrowthPct(50,0)=%v, want 0", got)
	}
	if got := analysis.GrowthPct(50, -10); got != 0 {
		t.Fatalf("GrowthPct(50,-10)=%v, want 0", got)
	}
}

func TestCoverageRatio(t *testing.T) {
	t.Parallel()

	if got := analysis.CoverageRatio(50, 200); got != 25 {
		t.Fatalf("CoverageRatio(50,200)=%v, want 25", got)
	}
	if got := analysis.CoverageRatio(50, 0); got != 0 {
		t.Fatalf("CoverageRatio(50,0)=%v, want 0", got)
	}
}

func TestCompetitiveness(t *testing.T) {
	t.Parallel()

	if got := analysis.Competitiveness(0, 0); got != 0 {
		t.Fatalf("Competitiveness(0,0)=%v, want 0", got)
	}
	if got := analysis.Competitiveness(100, 0); got != 100 {
		t.Fatalf("Competitiveness(100,0)=%v, want 100", got)
	}
	if got := analysis.Competitiveness(25, 75); got != 25 {
		t.Fatalf("Competitiveness(25,75)=%v, want 25", got)
	}
}
