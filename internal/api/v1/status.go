package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelens/internal/model"
)

type statusResponse struct {
	Status    string   `json:"status"`
	Views     []string `json:"views"`
	CacheSize int      `json:"cacheSize"`
	DataDir   string   `json:"dataDir"`
}

// GetStatus reports service health.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{
		Status: "ok",
		Views: []string{
			string(model.ViewCountry),
			string(model.ViewProduct),
			string(model.ViewOffice),
		},
		CacheSize: h.data.CacheInfo().Size,
		DataDir:   h.cfg.Data.DataDir,
	})
}
