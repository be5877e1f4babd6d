package http

import "github.com/gin-gonic/gin"

// Register attaches portfolio routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/facets", h.ListFacets)
	rg.GET("/projects", h.ListProjects)
	rg.GET("/projects/:slug", h.GetProject)
	rg.GET("/projects/:slug/related", h.ListRelated)

	rg.POST("/sessions", h.CreateSession)
	rg.GET("/sessions/:id", h.GetSession)
	rg.DELETE("/sessions/:id", h.DeleteSession)
	rg.GET("/sessions/:id/projects", h.ListSessionProjects)
	rg.PUT("/sessions/:id/facets/:facet", h.SetSessionFacet)
	rg.DELETE("/sessions/:id/facets/:facet", h.ClearSessionFacet)
	rg.DELETE("/sessions/:id/facets", h.ClearSession)
}
