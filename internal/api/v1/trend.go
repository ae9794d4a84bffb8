package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelens/internal/model"
)

// GetTrend returns the multi-year trend series for one entity of a
// wide-table view. Missing years stay at zero so every array matches
// the year axis.
// GET /api/trend?view=country&name=India
func (h *Handler) GetTrend(c *gin.Context) {
	view := c.DefaultQuery("view", string(model.ViewCountry))
	if !model.ValidView(view) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view: " + view})
		return
	}
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	series, err := h.trends.BuildWide(c.Request.Context(), model.View(view), name)
	if err != nil {
		writeDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetCommodityTrend returns the trend series for one commodity across
// every configured per-year workbook. Years load concurrently and a
// failed year degrades to zeros rather than failing the series.
// GET /api/commodities/trend?name=Petroleum oils
func (h *Handler) GetCommodityTrend(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	series, err := h.trends.BuildCommodity(c.Request.Context(), name)
	if err != nil {
		writeDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}
