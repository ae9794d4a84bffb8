package dataset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"tradelens/internal/analysis"
	"tradelens/internal/config"
	"tradelens/internal/geo"
	"tradelens/internal/metrics"
	"tradelens/internal/model"
	"tradelens/internal/store"
)

var (
	// ErrUnknownView marks a view name outside country/product/office.
	ErrUnknownView = errors.New("unknown view")
	// ErrYearNotFound marks a fiscal year absent from the dataset.
	ErrYearNotFound = errors.New("fiscal year not found")
)

// Service loads and caches the trade spreadsheets and answers the
// normalized queries the API serves. Reads go memory cache first,
// then the SQLite snapshot, then the workbook itself.
type Service struct {
	cfg      *config.AppConfig
	cache    *Cache
	store    *store.Store // nil disables the snapshot layer
	metrics  *metrics.Registry
	resolver *geo.Resolver
}

// NewService wires the service. The cache is injected so callers own
// its lifecycle; store may be nil.
func NewService(cfg *config.AppConfig, cache *Cache, st *store.Store, reg *metrics.Registry, resolver *geo.Resolver) *Service {
	return &Service{
		cfg:      cfg,
		cache:    cache,
		store:    st,
		metrics:  reg,
		resolver: resolver,
	}
}

// Resolver exposes the entity resolver for handlers.
func (s *Service) Resolver() *geo.Resolver {
	return s.resolver
}

func (s *Service) wideFile(view model.View) (string, error) {
	switch view {
	case model.ViewCountry:
		return s.cfg.Data.CountryFile, nil
	case model.ViewProduct:
		return s.cfg.Data.ProductFile, nil
	case model.ViewOffice:
		return s.cfg.Data.OfficeFile, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, view)
}

func (s *Service) openWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		s.metrics.WorkbookErrors.Inc()
		return nil, fmt.Errorf("failed to open workbook %s: %w", filepath.Base(path), err)
	}
	s.metrics.WorkbookLoads.Inc()
	return f, nil
}

// wideTable returns the parsed wide table for a view, loading and
// caching it on first use.
func (s *Service) wideTable(ctx context.Context, view model.View) (*WideTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := "wide:" + string(view)
	if v, ok := s.cache.Get(key); ok {
		s.metrics.CacheHits.Inc()
		return v.(*WideTable), nil
	}
	s.metrics.CacheMisses.Inc()

	file, err := s.wideFile(view)
	if err != nil {
		return nil, err
	}

	f, err := s.openWorkbook(config.GetDataPath(s.cfg, file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := parseWideTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	loadID := s.cache.Put(key, table)
	log.Printf("loaded %s view (%d rows, %d years, load %s)", view, len(table.rows), len(table.years), loadID)

	// Best-effort snapshot of the year list for offline restarts.
	if s.store != nil {
		if err := s.store.SetYearList(view, table.FiscalYears()); err != nil {
			log.Printf("failed to snapshot year list for %s: %v", view, err)
		}
	}

	return table, nil
}

// FiscalYears lists a view's fiscal years ascending, falling back to
// the snapshot when the workbook is unavailable.
func (s *Service) FiscalYears(ctx context.Context, view model.View) ([]string, error) {
	table, err := s.wideTable(ctx, view)
	if err != nil {
		if s.store != nil {
			if years, ok := s.store.YearList(view); ok {
				s.metrics.SnapshotHits.Inc()
				return years, nil
			}
		}
		return nil, err
	}
	return table.FiscalYears(), nil
}

// FiscalYearsDesc lists the years newest first.
func (s *Service) FiscalYearsDesc(ctx context.Context, view model.View) ([]string, error) {
	years, err := s.FiscalYears(ctx, view)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(years))
	for i, y := range years {
		out[len(years)-1-i] = y
	}
	return out, nil
}

// RawYear returns one fiscal year's unfiltered entries in sheet
// order, snapshotting them for later offline reads.
func (s *Service) RawYear(ctx context.Context, view model.View, fiscalYear string) ([]model.RawEntry, error) {
	table, err := s.wideTable(ctx, view)
	if err != nil {
		if s.store != nil {
			if entries, ok, serr := s.store.YearRecords(view, fiscalYear); serr == nil && ok {
				s.metrics.SnapshotHits.Inc()
				return entries, nil
			}
		}
		return nil, err
	}

	if !table.HasYear(fiscalYear) {
		return nil, fmt.Errorf("%w: %s", ErrYearNotFound, fiscalYear)
	}

	entries, skipped := table.RawYear(view, fiscalYear)
	if skipped > 0 {
		s.metrics.RowsSkipped.Add(float64(skipped))
	}

	if s.store != nil {
		if err := s.store.SaveYearRecords(view, fiscalYear, entries); err != nil {
			log.Printf("failed to snapshot %s %s: %v", view, fiscalYear, err)
		}
	}

	return entries, nil
}

// YearData returns one fiscal year's derived records. Entities with
// zero activity in both directions are excluded; growth compares
// against the preceding fiscal year when one exists.
func (s *Service) YearData(ctx context.Context, view model.View, fiscalYear string) ([]model.TradeRecord, error) {
	entries, err := s.RawYear(ctx, view, fiscalYear)
	if err != nil {
		return nil, err
	}

	previous := make(map[string]model.RawEntry)
	if years, yerr := s.FiscalYears(ctx, view); yerr == nil {
		for i, y := range years {
			if y == fiscalYear && i > 0 {
				if prev, perr := s.RawYear(ctx, view, years[i-1]); perr == nil {
					for _, e := range prev {
						previous[strings.ToLower(e.Name)] = e
					}
				}
				break
			}
		}
	}

	records := make([]model.TradeRecord, 0, len(entries))
	for _, e := range entries {
		if e.Imports == 0 && e.Exports == 0 {
			continue
		}
		prev := previous[strings.ToLower(e.Name)]
		records = append(records, model.TradeRecord{
			Name:            e.Name,
			Imports:         e.Imports,
			Exports:         e.Exports,
			TradeBalance:    analysis.TradeBalance(e.Imports, e.Exports),
			TotalTrade:      analysis.TotalTrade(e.Imports, e.Exports),
			ImportGrowth:    analysis.GrowthPct(e.Imports, prev.Imports),
			ExportGrowth:    analysis.GrowthPct(e.Exports, prev.Exports),
			CoverageRatio:   analysis.CoverageRatio(e.Exports, e.Imports),
			Competitiveness: analysis.Competitiveness(e.Exports, e.Imports),
		})
	}
	return records, nil
}

// ResolvedYearData enriches YearData with reference data: region,
// ISO code and coordinates for countries, coordinates for offices.
func (s *Service) ResolvedYearData(ctx context.Context, view model.View, fiscalYear string) ([]model.ResolvedRecord, error) {
	records, err := s.YearData(ctx, view, fiscalYear)
	if err != nil {
		return nil, err
	}

	out := make([]model.ResolvedRecord, 0, len(records))
	for _, rec := range records {
		resolved := model.ResolvedRecord{TradeRecord: rec}
		switch view {
		case model.ViewCountry:
			resolved.Region = s.resolver.Region(rec.Name)
			if resolved.Region == geo.RegionOther {
				s.metrics.RegionFallbacks.Inc()
			}
			resolved.ISO = s.resolver.ISO(rec.Name)
			if coords, ok := s.resolver.Coordinates(rec.Name); ok {
				resolved.Coords = &coords
			}
		case model.ViewOffice:
			if coords, ok := s.resolver.OfficeCoordinates(rec.Name); ok {
				resolved.Coords = &coords
			}
		}
		out = append(out, resolved)
	}
	return out, nil
}

// CommodityYears lists the fiscal years with commodity workbooks,
// newest first.
func (s *Service) CommodityYears() []string {
	out := make([]string, len(s.cfg.Business.CommodityYears))
	copy(out, s.cfg.Business.CommodityYears)
	return out
}

// CommodityCountryYears lists the years with partner sheets. Only the
// most recent workbooks carry them.
func (s *Service) CommodityCountryYears() []string {
	years := s.CommodityYears()
	if len(years) > 4 {
		years = years[:4]
	}
	return years
}

// commodityYear loads and caches one fiscal year's commodity workbook.
func (s *Service) commodityYear(ctx context.Context, fiscalYear string) (*commodityYearData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := "commodity:" + fiscalYear
	if v, ok := s.cache.Get(key); ok {
		s.metrics.CacheHits.Inc()
		return v.(*commodityYearData), nil
	}
	s.metrics.CacheMisses.Inc()

	name := model.FiscalYear(fiscalYear).FileBase() + ".xlsx"
	path := config.GetDataPath(s.cfg, filepath.Join(s.cfg.Data.CommoditySubdir, name))

	f, err := s.openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := parseCommodityWorkbook(f)
	loadID := s.cache.Put(key, data)
	log.Printf("loaded commodity workbook %s (%d commodities, %d partner records, load %s)",
		fiscalYear, len(data.Commodities), len(data.Countries), loadID)

	return data, nil
}

// Commodities returns the merged per-HS-code records for one year.
func (s *Service) Commodities(ctx context.Context, fiscalYear string) ([]model.CommodityRecord, error) {
	data, err := s.commodityYear(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}
	return data.Commodities, nil
}

// CommodityCountries returns the merged per-partner records for one
// year.
func (s *Service) CommodityCountries(ctx context.Context, fiscalYear string) ([]model.CommodityCountryRecord, error) {
	data, err := s.commodityYear(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}
	return data.Countries, nil
}

// CommodityFilters lists the distinct commodities and partner
// countries for one year, sorted for dropdowns.
func (s *Service) CommodityFilters(ctx context.Context, fiscalYear string) (commodities, countries []string, err error) {
	records, err := s.CommodityCountries(ctx, fiscalYear)
	if err != nil {
		return nil, nil, err
	}
	commodities = uniqueSorted(len(records), func(i int) string { return records[i].Description })
	countries = uniqueSorted(len(records), func(i int) string { return records[i].Country })
	return commodities, countries, nil
}

// Summary loads the fiscal-year totals and growth workbooks.
func (s *Service) Summary(ctx context.Context) ([]model.SummaryRow, []model.GrowthRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if v, ok := s.cache.Get("summary"); ok {
		s.metrics.CacheHits.Inc()
		d := v.(*summaryBundle)
		return d.rows, d.growth, nil
	}
	s.metrics.CacheMisses.Inc()

	sf, err := s.openWorkbook(config.GetDataPath(s.cfg, s.cfg.Data.SummaryFile))
	if err != nil {
		return nil, nil, err
	}
	defer sf.Close()

	rows, err := parseSummaryWorkbook(sf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse summary: %w", err)
	}

	gf, err := s.openWorkbook(config.GetDataPath(s.cfg, s.cfg.Data.GrowthFile))
	if err != nil {
		return nil, nil, err
	}
	defer gf.Close()

	growth, err := parseGrowthWorkbook(gf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse growth data: %w", err)
	}

	s.cache.Put("summary", &summaryBundle{rows: rows, growth: growth})
	return rows, growth, nil
}

// KPICards derives the headline cards for the latest fiscal year.
func (s *Service) KPICards(ctx context.Context) ([]model.KPICard, error) {
	rows, growth, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return BuildKPICards(rows, growth), nil
}

// CacheInfo reports the cache contents.
func (s *Service) CacheInfo() CacheInfo {
	return s.cache.Info()
}

// ClearCache drops all cached workbook data.
func (s *Service) ClearCache() {
	s.cache.Clear()
}
