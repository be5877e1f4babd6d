package http

import "github.com/gin-gonic/gin"

// Register attaches the contact routes. Extra handlers such as a rate
// limiter run before the contact handlers.
func (h *Handler) Register(rg *gin.RouterGroup, pre ...gin.HandlerFunc) {
	rg.POST("", chain(pre, h.SubmitContact)...)
	rg.POST("/quick", chain(pre, h.SubmitQuick)...)
}

func chain(pre []gin.HandlerFunc, last gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(pre)+1)
	return append(append(out, pre...), last)
}

// RegisterAdmin attaches the archive listing behind the given guard handlers.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	rg.GET("/submissions", chain(guard, h.ListSubmissions)...)
}
