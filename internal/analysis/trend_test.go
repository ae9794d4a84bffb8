package analysis_test

import (
	"context"
	"errors"
	"testing"

	"tradelens/internal/analysis"
	"tradelens/internal/model"
)

type fakeWide struct {
	years []string
	data  map[string][]model.RawEntry
	fail  map[string]bool
}

func (f *fakeWide) FiscalYears(_ context.Context, _ model.View) ([]string, error) {
	return f.years, nil
}

func (f *fakeWide) RawYear(_ context.Context, _ model.View, fiscalYear string) ([]model.RawEntry, error) {
	if f.fail[fiscalYear] {
		return nil, errors.New("workbook unavailable")
	}
	return f.data[fiscalYear], nil
}

type fakeCommodities struct {
	years []string
	data  map[string][]model.CommodityRecord
	fail  map[string]bool
}

func (f *fakeCommodities) CommodityYears() []string {
	return f.years
}

func (f *fakeCommodities) Commodities(_ context.Context, fiscalYear string) ([]model.CommodityRecord, error) {
	if f.fail[fiscalYear] {
		return nil, errors.New("workbook unavailable")
	}
	return f.data[fiscalYear], nil
}

func TestBuildWideZeroFillsMissingYears(t *testing.T) {
	t.Parallel()

	wide := &fakeWide{
		years: []string{"2079/080", "2080/081", "2081/082"},
		data: map[string][]model.RawEntry{
			"2079/080": {{Name: "India", Imports: 100, Exports: 40}},
			"2081/082": {{Name: "india", Imports: 300, Exports: 60}},
		},
	}

	b := analysis.NewTrendBuilder(wide, nil, nil)
	series, err := b.BuildWide(context.Background(), model.ViewCountry, "India")
	if err != nil {
		t.Fatalf("BuildWide failed: %v", err)
	}

	if len(series.Years) != 3 {
		t.Fatalf("len(Years)=%d, want 3", len(series.Years))
	}
	for _, arr := range [][]float64{series.Imports, series.Exports, series.TradeBalance, series.TotalTrade} {
		if len(arr) != len(series.Years) {
			t.Fatalf("array length %d != years %d", len(arr), len(series.Years))
		}
	}

	if series.Imports[0] != 100 || series.Exports[0] != 40 {
		t.Fatalf("year 0: imports=%v exports=%v", series.Imports[0], series.Exports[0])
	}
	// The entity is absent in the middle year.
	if series.Imports[1] != 0 || series.Exports[1] != 0 || series.TotalTrade[1] != 0 {
		t.Fatalf("middle year should be zero, got imports=%v", series.Imports[1])
	}
	// Name matching ignores case.
	if series.Imports[2] != 300 {
		t.Fatalf("year 2: imports=%v, want 300", series.Imports[2])
	}
	if series.TradeBalance[2] != -240 {
		t.Fatalf("year 2: tradeBalance=%v, want -240", series.TradeBalance[2])
	}
}

func TestBuildWideDegradesFailedYears(t *testing.T) {
	t.Parallel()

	wide := &fakeWide{
		years: []string{"2080/081", "2081/082"},
		data: map[string][]model.RawEntry{
			"2081/082": {{Name: "India", Imports: 300, Exports: 60}},
		},
		fail: map[string]bool{"2080/081": true},
	}

	b := analysis.NewTrendBuilder(wide, nil, nil)
	series, err := b.BuildWide(context.Background(), model.ViewCountry, "India")
	if err != nil {
		t.Fatalf("a failed year must not fail the series: %v", err)
	}
	if series.Imports[0] != 0 {
		t.Fatalf("failed year should read zero, got %v", series.Imports[0])
	}
	if series.Imports[1] != 300 {
		t.Fatalf("surviving year lost: %v", series.Imports[1])
	}
}

func TestBuildCommodityTrend(t *testing.T) {
	t.Parallel()

	comms := &fakeCommodities{
		years: []string{"2081/082", "2080/081", "2079/080"},
		data: map[string][]model.CommodityRecord{
			"2081/082": {{HSCode: "2710", Description: "Petroleum oils", ImportValue: 900, ExportValue: 10, TradeBalance: -890, TotalTrade: 910}},
			"2080/081": {{HSCode: "2710", Description: "Petroleum oils", ImportValue: 700, ExportValue: 5, TradeBalance: -695, TotalTrade: 705}},
		},
		fail: map[string]bool{"2079/080": true},
	}

	b := analysis.NewTrendBuilder(nil, comms, nil)
	series, err := b.BuildCommodity(context.Background(), "petroleum oils")
	if err != nil {
		t.Fatalf("BuildCommodity failed: %v", err)
	}

	if len(series.Years) != 3 {
		t.Fatalf("len(Years)=%d, want 3", len(series.Years))
	}
	if series.Imports[0] != 900 || series.Imports[1] != 700 {
		t.Fatalf("imports=%v", series.Imports)
	}
	if series.Imports[2] != 0 || series.TotalTrade[2] != 0 {
		t.Fatalf("failed year should stay zero, got %v", series.Imports[2])
	}
}

func TestBuildCommodityMatchesHSCodeAndSubstring(t *testing.T) {
	t.Parallel()

	comms := &fakeCommodities{
		years: []string{"2081/082"},
		data: map[string][]model.CommodityRecord{
			"2081/082": {
				{HSCode: "0902", Description: "Tea, whether or not flavoured", ImportValue: 50, TotalTrade: 50},
				{HSCode: "2710", Description: "Petroleum oils", ImportValue: 900, TotalTrade: 900},
			},
		},
	}

	b := analysis.NewTrendBuilder(nil, comms, nil)

	byCode, err := b.BuildCommodity(context.Background(), "2710")
	if err != nil || byCode.Imports[0] != 900 {
		t.Fatalf("HS code lookup: imports=%v err=%v", byCode.Imports, err)
	}

	bySub, err := b.BuildCommodity(context.Background(), "tea")
	if err != nil || bySub.Imports[0] != 50 {
		t.Fatalf("substring lookup: imports=%v err=%v", bySub.Imports, err)
	}
}

func TestBuildCommodityHonorsCancel(t *testing.T) {
	t.Parallel()

	comms := &fakeCommodities{years: []string{"2081/082"}}
	b := analysis.NewTrendBuilder(nil, comms, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := b.BuildCommodity(ctx, "anything"); err == nil {
		t.Fatalf("canceled context should surface an error")
	}
}
