package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// ListSubmissions returns the newest archived submissions.
func (h *Handler) ListSubmissions(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecentLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
			return
		}
		limit = n
	}

	recs, err := h.svc.Recent(c.Request.Context(), limit)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"submissions": recs, "count": len(recs)})
	case errors.Is(err, domain.ErrArchiveDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact archive is not configured"})
	default:
		h.log.Error("list submissions failed", zap.String("request_id", c.GetString("request_id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
