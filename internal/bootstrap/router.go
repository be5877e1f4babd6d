package bootstrap

import (
	"database/sql"
	"time"

	httpapi "github.com/digiweb-agency/digiweb-backend/internal/api/http"
	"github.com/digiweb-agency/digiweb-backend/internal/api/http/middleware"
	contacthttp "github.com/digiweb-agency/digiweb-backend/internal/contact/http"
	contactservice "github.com/digiweb-agency/digiweb-backend/internal/contact/service"
	"github.com/digiweb-agency/digiweb-backend/internal/metrics"
	portfoliohttp "github.com/digiweb-agency/digiweb-backend/internal/portfolio/http"
	portfolioservice "github.com/digiweb-agency/digiweb-backend/internal/portfolio/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	TrustedProxies []string
	AdminAPIKey    string

	Portfolio *portfolioservice.PortfolioService
	Contact   *contactservice.ContactService
	Limiter   *middleware.IPRateLimiter
	Metrics   *metrics.Metrics
	Log       *zap.Logger

	DB    *sql.DB
	Redis *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	log := dep.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	// An empty list makes ClientIP the TCP peer address.
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		log.Error("invalid trusted proxies, trusting none", zap.Strings("proxies", dep.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))
	if dep.Metrics != nil {
		r.Use(dep.Metrics.Middleware())
		dep.Metrics.Register(r)
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Portfolio.Store().Len(), dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	portfoliohttp.New(dep.Portfolio, dep.Log).Register(api.Group("/portfolio"))

	var pre []gin.HandlerFunc
	if dep.Limiter != nil {
		pre = append(pre, dep.Limiter.Middleware())
	}
	contactHandler := contacthttp.New(dep.Contact, dep.Log)
	contactHandler.Register(r.Group("/api/contact"), pre...)
	contactHandler.Register(api.Group("/contact"), pre...)
	contactHandler.RegisterAdmin(api.Group("/admin/contact"), middleware.APIKeyMiddleware(dep.AdminAPIKey))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID, middleware.HeaderAPIKey},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
