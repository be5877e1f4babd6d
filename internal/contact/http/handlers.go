package http

import (
	"errors"
	"net/http"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitContact relays the main contact form.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingContact})
		return
	}

	err := h.svc.SubmitContact(c.Request.Context(), domain.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Service: req.Service,
		Message: req.Message,
	})
	h.respond(c, err)
}

// SubmitQuick relays the call-back request from project pages.
func (h *Handler) SubmitQuick(c *gin.Context) {
	var req quickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingQuick})
		return
	}

	err := h.svc.SubmitQuick(c.Request.Context(), domain.QuickRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		ProjectName: req.ProjectName,
	})
	h.respond(c, err)
}

func (h *Handler) respond(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, domain.ErrMissingContactFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingContact})
	case errors.Is(err, domain.ErrMissingQuickFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingQuick})
	case errors.Is(err, domain.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidEmail})
	default:
		h.log.Error("contact form error",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgSendFailed})
	}
}
