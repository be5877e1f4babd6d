package http

import (
	"net/http"

	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/gin-gonic/gin"
)

// CreateSession starts a server-held filter session.
func (h *Handler) CreateSession(c *gin.Context) {
	view, err := h.svc.CreateSession(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": view})
}

func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.svc.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// ListSessionProjects filters the catalog with the session's selection.
func (h *Handler) ListSessionProjects(c *gin.Context) {
	view, projects, err := h.svc.SessionProjects(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectListResponse{
		Projects:      projects,
		Count:         len(projects),
		ActiveFilters: view.ActiveCount,
	})
}

func (h *Handler) SetSessionFacet(c *gin.Context) {
	f, err := domain.ParseFacet(c.Param("facet"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req facetValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.svc.SetSessionFacet(c.Request.Context(), c.Param("id"), f, req.Value)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *Handler) ClearSessionFacet(c *gin.Context) {
	f, err := domain.ParseFacet(c.Param("facet"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	view, err := h.svc.ClearSessionFacet(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// ClearSession resets every facet of the session.
func (h *Handler) ClearSession(c *gin.Context) {
	view, err := h.svc.ClearSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// DeleteSession discards the session.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.svc.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
