package http

import (
	"github.com/digiweb-agency/digiweb-backend/internal/contact/service"
	"go.uber.org/zap"
)

const (
	msgMissingContact = "Name, email, and message are required."
	msgMissingQuick   = "Name and phone are required."
	msgInvalidEmail   = "Please provide a valid email address."
	msgSendFailed     = "Failed to send message. Please try again later."
)

// Handler serves the contact form endpoints.
type Handler struct {
	svc *service.ContactService
	log *zap.Logger
}

func New(svc *service.ContactService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type quickReq struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ProjectName string `json:"projectName"`
}
