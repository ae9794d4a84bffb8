package analysis

import (
	"context"
	"log"
	"strings"
	"sync"

	"tradelens/internal/metrics"
	"tradelens/internal/model"
)

// WideSource feeds the wide-table trends.
type WideSource interface {
	FiscalYears(ctx context.Context, view model.View) ([]string, error)
	RawYear(ctx context.Context, view model.View, fiscalYear string) ([]model.RawEntry, error)
}

// CommoditySource feeds the per-year commodity trends.
type CommoditySource interface {
	CommodityYears() []string
	Commodities(ctx context.Context, fiscalYear string) ([]model.CommodityRecord, error)
}

// TrendBuilder assembles zero-filled series over every fiscal year.
// Result arrays always span the full year list: an entity absent from
// a year contributes zeros, never a shorter array.
type TrendBuilder struct {
	wide        WideSource
	commodities CommoditySource
	metrics     *metrics.Registry
}

// NewTrendBuilder wires a builder. metrics may be nil.
func NewTrendBuilder(wide WideSource, commodities CommoditySource, reg *metrics.Registry) *TrendBuilder {
	return &TrendBuilder{wide: wide, commodities: commodities, metrics: reg}
}

func (b *TrendBuilder) yearFailed() {
	if b.metrics != nil {
		b.metrics.TrendYearsFailed.Inc()
	}
}

// BuildWide builds an entity's series over a wide-table view's full
// year range, ascending. Years where the entity is absent stay zero.
func (b *TrendBuilder) BuildWide(ctx context.Context, view model.View, name string) (*model.TrendSeries, error) {
	years, err := b.wide.FiscalYears(ctx, view)
	if err != nil {
		return nil, err
	}

	series := model.NewTrendSeries(name, years)
	for i, year := range years {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := b.wide.RawYear(ctx, view, year)
		if err != nil {
			log.Printf("trend %s/%s: year %s unavailable: %v", view, name, year, err)
			b.yearFailed()
			continue
		}

		for _, e := range entries {
			if strings.EqualFold(e.Name, name) {
				series.Imports[i] = e.Imports
				series.Exports[i] = e.Exports
				series.TradeBalance[i] = TradeBalance(e.Imports, e.Exports)
				series.TotalTrade[i] = TotalTrade(e.Imports, e.Exports)
				break
			}
		}
	}

	return series, nil
}

// BuildCommodity builds a commodity's series over the configured
// commodity years. Years load concurrently; a year whose workbook or
// lookup fails contributes zeros rather than failing the series.
func (b *TrendBuilder) BuildCommodity(ctx context.Context, name string) (*model.TrendSeries, error) {
	years := b.commodities.CommodityYears()
	series := model.NewTrendSeries(name, years)

	var wg sync.WaitGroup
	for i, year := range years {
		wg.Add(1)
		go func(i int, year string) {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}

			records, err := b.commodities.Commodities(ctx, year)
			if err != nil {
				log.Printf("commodity trend %q: year %s unavailable: %v", name, year, err)
				b.yearFailed()
				return
			}

			rec, ok := findCommodity(records, name)
			if !ok {
				return
			}
			series.Imports[i] = rec.ImportValue
			series.Exports[i] = rec.ExportValue
			series.TradeBalance[i] = rec.TradeBalance
			series.TotalTrade[i] = rec.TotalTrade
		}(i, year)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return series, nil
}

// findCommodity locates a record by exact description, then HS code,
// then substring, all case-insensitive.
func findCommodity(records []model.CommodityRecord, name string) (model.CommodityRecord, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return model.CommodityRecord{}, false
	}

	for _, r := range records {
		if strings.ToLower(r.Description) == lower {
			return r, true
		}
	}
	for _, r := range records {
		if strings.EqualFold(r.HSCode, name) {
			return r, true
		}
	}
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Description), lower) {
			return r, true
		}
	}
	return model.CommodityRecord{}, false
}
