package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/filter"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/resolver"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListFacets returns the facet domains, sentinel first.
func (h *Handler) ListFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"facets": h.svc.Facets()})
}

// ListProjects filters the catalog by the facet query parameters.
func (h *Handler) ListProjects(c *gin.Context) {
	sel, err := filter.FromQuery(c.Request.URL.Query(), h.svc.Store())
	if err != nil {
		h.writeError(c, err)
		return
	}

	projects := h.svc.Projects(sel)
	c.JSON(http.StatusOK, projectListResponse{
		Projects:      projects,
		Count:         len(projects),
		ActiveFilters: sel.ActiveCount(),
	})
}

// GetProject resolves a project by slug.
func (h *Handler) GetProject(c *gin.Context) {
	p, err := h.svc.Project(c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": p})
}

// ListRelated returns other projects to show under a detail page.
func (h *Handler) ListRelated(c *gin.Context) {
	limit := resolver.DefaultRelatedLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRelatedLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 20"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{"projects": h.svc.Related(c.Param("slug"), limit)})
}

// writeError maps domain errors to status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, domain.ErrUnknownFacet), errors.Is(err, domain.ErrInvalidFacetValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSessionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "session changed concurrently, retry"})
	case errors.Is(err, domain.ErrSessionsDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "filter sessions are unavailable"})
	default:
		h.log.Error("portfolio request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
