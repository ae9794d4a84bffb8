package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelens/internal/dataset"
	"tradelens/internal/model"
)

type summaryYear struct {
	FiscalYear string `json:"fiscalYear"`
	ADLabel    string `json:"adLabel"`
}

type summaryResponse struct {
	Years  []summaryYear      `json:"years"`
	Rows   []model.SummaryRow `json:"rows"`
	Growth []model.GrowthRow  `json:"growth"`
	KPIs   []model.KPICard    `json:"kpis"`
}

// GetSummary returns the whole summary dashboard: yearly totals,
// year-over-year growth and the headline cards for the latest year.
// GET /api/summary
func (h *Handler) GetSummary(c *gin.Context) {
	rows, growth, err := h.data.Summary(c.Request.Context())
	if err != nil {
		writeDataError(c, err)
		return
	}

	years := make([]summaryYear, 0, len(rows))
	for _, r := range rows {
		years = append(years, summaryYear{
			FiscalYear: r.FiscalYear,
			ADLabel:    model.FiscalYear(r.FiscalYear).ADLabel(),
		})
	}

	c.JSON(http.StatusOK, summaryResponse{
		Years:  years,
		Rows:   rows,
		Growth: growth,
		KPIs:   dataset.BuildKPICards(rows, growth),
	})
}
