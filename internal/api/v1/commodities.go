package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tradelens/internal/analysis"
	"tradelens/internal/model"
)

type commodityYearsResponse struct {
	Years        []string `json:"years"`
	PartnerYears []string `json:"partnerYears"`
}

// ListCommodityYears returns the fiscal years with a commodity
// workbook on disk. Partner breakdowns only ship for the recent
// years.
// GET /api/commodities/years
func (h *Handler) ListCommodityYears(c *gin.Context) {
	c.JSON(http.StatusOK, commodityYearsResponse{
		Years:        h.data.CommodityYears(),
		PartnerYears: h.data.CommodityCountryYears(),
	})
}

type commoditiesResponse struct {
	Year    string                  `json:"year"`
	Count   int                     `json:"count"`
	Records []model.CommodityRecord `json:"records"`
}

// ListCommodities returns the merged commodity records for one fiscal
// year.
// GET /api/commodities?year=2081/082
func (h *Handler) ListCommodities(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}

	records, err := h.data.Commodities(c.Request.Context(), year)
	if err != nil {
		writeDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, commoditiesResponse{
		Year:    year,
		Count:   len(records),
		Records: records,
	})
}

// TopCommodities returns the top N commodities for a fiscal year
// ranked by the requested metric.
// GET /api/commodities/top?year=2081/082&metric=imports&n=10
func (h *Handler) TopCommodities(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}

	metric, err := analysis.ParseMetric(c.Query("metric"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n := h.cfg.Business.DefaultTopN
	if raw := c.Query("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
	}

	records, err := h.data.Commodities(c.Request.Context(), year)
	if err != nil {
		writeDataError(c, err)
		return
	}

	top := analysis.TopN(records, n, func(r model.CommodityRecord) float64 {
		return commodityMetricValue(r, metric)
	})

	c.JSON(http.StatusOK, commoditiesResponse{
		Year:    year,
		Count:   len(top),
		Records: top,
	})
}

func commodityMetricValue(r model.CommodityRecord, m analysis.Metric) float64 {
	switch m {
	case analysis.MetricImports:
		return r.ImportValue
	case analysis.MetricExports:
		return r.ExportValue
	case analysis.MetricTradeBalance:
		return r.TradeBalance
	}
	return r.TotalTrade
}

type commodityCountriesResponse struct {
	Year    string                         `json:"year"`
	Count   int                            `json:"count"`
	Records []model.CommodityCountryRecord `json:"records"`
}

// ListCommodityCountries returns the commodity-by-partner records for
// one fiscal year, optionally filtered by commodity description or
// partner country.
// GET /api/commodity-countries?year=2081/082&country=India
func (h *Handler) ListCommodityCountries(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}

	records, err := h.data.CommodityCountries(c.Request.Context(), year)
	if err != nil {
		writeDataError(c, err)
		return
	}

	commodity := c.Query("commodity")
	country := c.Query("country")
	if commodity != "" || country != "" {
		filtered := make([]model.CommodityCountryRecord, 0, len(records))
		for _, r := range records {
			if commodity != "" && !strings.EqualFold(r.Description, commodity) {
				continue
			}
			if country != "" && !strings.EqualFold(r.Country, country) {
				continue
			}
			filtered = append(filtered, r)
		}
		records = filtered
	}

	c.JSON(http.StatusOK, commodityCountriesResponse{
		Year:    year,
		Count:   len(records),
		Records: records,
	})
}

type commodityFiltersResponse struct {
	Year        string   `json:"year"`
	Commodities []string `json:"commodities"`
	Countries   []string `json:"countries"`
}

// ListCommodityCountryFilters returns the distinct commodity and
// partner names for the filter dropdowns.
// GET /api/commodity-countries/filters?year=2081/082
func (h *Handler) ListCommodityCountryFilters(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}

	commodities, countries, err := h.data.CommodityFilters(c.Request.Context(), year)
	if err != nil {
		writeDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, commodityFiltersResponse{
		Year:        year,
		Commodities: commodities,
		Countries:   countries,
	})
}
