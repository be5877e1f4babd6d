package http

import (
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/service"
	"go.uber.org/zap"
)

const maxRelatedLimit = 20

// Handler serves the portfolio API.
type Handler struct {
	svc *service.PortfolioService
	log *zap.Logger
}

func New(svc *service.PortfolioService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

type projectListResponse struct {
	Projects      []domain.Project `json:"projects"`
	Count         int              `json:"count"`
	ActiveFilters int              `json:"active_filters"`
}

type facetValueReq struct {
	Value string `json:"value" binding:"required"`
}
