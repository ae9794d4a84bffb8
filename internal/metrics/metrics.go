package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service counters behind a private prometheus
// registry so tests can run isolated instances.
type Registry struct {
	reg *prometheus.Registry

	WorkbookLoads    prometheus.Counter
	WorkbookErrors   prometheus.Counter
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	SnapshotHits     prometheus.Counter
	RowsSkipped      prometheus.Counter
	RegionFallbacks  prometheus.Counter
	TrendYearsFailed prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	loads := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_workbook_loads_total"})
	loadErrs := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_workbook_errors_total"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_cache_hits_total"})
	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_cache_misses_total"})
	snapshotHits := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_snapshot_hits_total"})
	rowsSkipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_rows_skipped_total"})
	regionFallbacks := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_region_fallbacks_total"})
	trendYearsFailed := prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelens_trend_years_failed_total"})

	r.MustRegister(loads, loadErrs, cacheHits, cacheMisses, snapshotHits, rowsSkipped, regionFallbacks, trendYearsFailed)
	return &Registry{
		reg:              r,
		WorkbookLoads:    loads,
		WorkbookErrors:   loadErrs,
		CacheHits:        cacheHits,
		CacheMisses:      cacheMisses,
		SnapshotHits:     snapshotHits,
		RowsSkipped:      rowsSkipped,
		RegionFallbacks:  regionFallbacks,
		TrendYearsFailed: trendYearsFailed,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
