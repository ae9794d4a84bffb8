package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelens/internal/dataset"
	"tradelens/internal/model"
)

type yearsResponse struct {
	View  string   `json:"view"`
	Order string   `json:"order"`
	Years []string `json:"years"`
}

// ListYears returns the fiscal years present in a wide-table workbook.
// Dropdowns want newest-first, charts oldest-first.
// GET /api/years?view=country&order=desc
func (h *Handler) ListYears(c *gin.Context) {
	view := c.DefaultQuery("view", string(model.ViewCountry))
	if !model.ValidView(view) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view: " + view})
		return
	}

	order := c.DefaultQuery("order", "asc")
	var (
		years []string
		err   error
	)
	switch order {
	case "asc":
		years, err = h.data.FiscalYears(c.Request.Context(), model.View(view))
	case "desc":
		years, err = h.data.FiscalYearsDesc(c.Request.Context(), model.View(view))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be asc or desc"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, yearsResponse{
		View:  view,
		Order: order,
		Years: years,
	})
}

// yearParams validates the view/year query pair shared by the record
// endpoints.
func yearParams(c *gin.Context) (model.View, string, bool) {
	view := c.DefaultQuery("view", string(model.ViewCountry))
	if !model.ValidView(view) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view: " + view})
		return "", "", false
	}
	year := c.Query("year")
	if year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return "", "", false
	}
	if !model.FiscalYear(year).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must look like 2081/082"})
		return "", "", false
	}
	return model.View(view), year, true
}

func writeDataError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dataset.ErrYearNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dataset.ErrUnknownView):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
