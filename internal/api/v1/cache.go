package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCacheInfo reports what the in-memory cache currently holds.
// GET /api/cache
func (h *Handler) GetCacheInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.CacheInfo())
}

// ClearCache drops every cached workbook so the next request re-reads
// from disk.
// DELETE /api/cache
func (h *Handler) ClearCache(c *gin.Context) {
	h.data.ClearCache()
	c.JSON(http.StatusOK, gin.H{"message": "cache cleared"})
}
