package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Stats.Compute(c.Request.Context())
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
