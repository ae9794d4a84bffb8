package v1

import (
	"github.com/gin-gonic/gin"

	"tradelens/internal/analysis"
	"tradelens/internal/config"
	"tradelens/internal/dataset"
)

// Handler serves the dashboard API.
type Handler struct {
	data   *dataset.Service
	trends *analysis.TrendBuilder
	cfg    *config.AppConfig
}

// NewHandler creates the API handler.
func NewHandler(data *dataset.Service, trends *analysis.TrendBuilder, cfg *config.AppConfig) *Handler {
	return &Handler{
		data:   data,
		trends: trends,
		cfg:    cfg,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// Wide-table views: countries, products, customs offices
	router.GET("/years", h.ListYears)
	router.GET("/records", h.ListRecords)
	router.GET("/top", h.TopRecords)
	router.GET("/trend", h.GetTrend)

	// Per-year commodity workbooks
	router.GET("/commodities/years", h.ListCommodityYears)
	router.GET("/commodities", h.ListCommodities)
	router.GET("/commodities/top", h.TopCommodities)
	router.GET("/commodities/trend", h.GetCommodityTrend)
	router.GET("/commodity-countries", h.ListCommodityCountries)
	router.GET("/commodity-countries/filters", h.ListCommodityCountryFilters)

	// Summary dashboard
	router.GET("/summary", h.GetSummary)

	// Cache inspection
	router.GET("/cache", h.GetCacheInfo)
	router.DELETE("/cache", h.ClearCache)
}
