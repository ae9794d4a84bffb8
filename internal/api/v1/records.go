package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tradelens/internal/analysis"
	"tradelens/internal/model"
)

type recordsResponse struct {
	View    string                 `json:"view"`
	Year    string                 `json:"year"`
	Count   int                    `json:"count"`
	Records []model.ResolvedRecord `json:"records"`
}

// ListRecords returns the full derived dataset for one fiscal year,
// enriched with regions, ISO codes and coordinates where the view
// supports them.
// GET /api/records?view=country&year=2081/082
func (h *Handler) ListRecords(c *gin.Context) {
	view, year, ok := yearParams(c)
	if !ok {
		return
	}

	records, err := h.data.ResolvedYearData(c.Request.Context(), view, year)
	if err != nil {
		writeDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, recordsResponse{
		View:    string(view),
		Year:    year,
		Count:   len(records),
		Records: records,
	})
}

type topRecord struct {
	model.TradeRecord
	Label          string `json:"label"`
	FormattedValue string `json:"formattedValue"`
}

type topResponse struct {
	View    string      `json:"view"`
	Year    string      `json:"year"`
	Metric  string      `json:"metric"`
	N       int         `json:"n"`
	Records []topRecord `json:"records"`
}

// TopRecords returns the top N entities for a fiscal year ranked by
// the requested metric. Ordering is stable so ties keep their sheet
// order.
// GET /api/top?view=country&year=2081/082&metric=totalTrade&n=10
func (h *Handler) TopRecords(c *gin.Context) {
	view, year, ok := yearParams(c)
	if !ok {
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

	records, err := h.data.YearData(c.Request.Context(), view, year)
	if err != nil {
		writeDataError(c, err)
		return
	}

	top := analysis.TopNTrade(records, metric, n)
	out := make([]topRecord, 0, len(top))
	for _, r := range top {
		out = append(out, topRecord{
			TradeRecord:    r,
			Label:          shortLabel(r.Name),
			FormattedValue: analysis.FormatValue(analysis.MetricValue(r, metric)),
		})
	}

	c.JSON(http.StatusOK, topResponse{
		View:    string(view),
		Year:    year,
		Metric:  string(metric),
		N:       n,
		Records: out,
	})
}

// shortLabel abbreviates a few long country names so chart axes stay
// readable.
func shortLabel(name string) string {
	switch name {
	case "United States":
		return "USA"
	case "United Kingdom":
		return "UK"
	case "United Arab Emirates":
		return "UAE"
	}
	return name
}
