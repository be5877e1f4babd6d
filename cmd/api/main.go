package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/digiweb-agency/digiweb-backend/config"
	"github.com/digiweb-agency/digiweb-backend/internal/api/http/middleware"
	"github.com/digiweb-agency/digiweb-backend/internal/bootstrap"
	"github.com/digiweb-agency/digiweb-backend/internal/contact/mailer"
	contactrepo "github.com/digiweb-agency/digiweb-backend/internal/contact/repository"
	contactservice "github.com/digiweb-agency/digiweb-backend/internal/contact/service"
	"github.com/digiweb-agency/digiweb-backend/internal/metrics"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/catalog"
	portfoliorepo "github.com/digiweb-agency/digiweb-backend/internal/portfolio/repository"
	portfolioservice "github.com/digiweb-agency/digiweb-backend/internal/portfolio/service"
	"github.com/digiweb-agency/digiweb-backend/internal/storage/postgres"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := catalog.Builtin()
	if cfg.Catalog.File != "" {
		store, err = catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			logger.Fatal("catalog load failed", zap.String("file", cfg.Catalog.File), zap.Error(err))
		}
	}
	logger.Info("catalog ready", zap.Int("projects", store.Len()))

	m := metrics.New()
	deps := bootstrap.RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		AdminAPIKey:    cfg.Admin.APIKey,
		Limiter:        middleware.NewIPRateLimiter(cfg.RateLimit.ContactPerMinute, cfg.RateLimit.ContactBurst),
		Metrics:        m,
		Log:            logger,
	}

	var sessions portfolioservice.SessionStore
	if cfg.SessionsEnabled() {
		rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, filter sessions disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			deps.Redis = rdb
			sessions = portfoliorepo.NewSessionRepository(rdb, cfg.Redis.SessionTTL)
		}
	}

	var archive contactservice.Archive
	if cfg.ArchiveEnabled() {
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			logger.Warn("database unavailable, contact archive disabled", zap.Error(err))
		} else {
			defer db.Close()
			repo := contactrepo.NewSubmissionRepository(db)
			if err := repo.EnsureSchema(ctx); err != nil {
				logger.Fatal("contact schema", zap.Error(err))
			}
			deps.DB = db
			archive = repo
		}
	}

	if cfg.Mail.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY is not set, contact submissions will fail")
	}

	deps.Portfolio = portfolioservice.NewPortfolioService(store, sessions, m)
	deps.Contact = contactservice.NewContactService(
		mailer.NewResendMailer(cfg.Mail.ResendBaseURL, cfg.Mail.ResendAPIKey, cfg.Mail.Timeout),
		archive,
		contactservice.Addresses{
			Recipient: cfg.Mail.Recipient,
			FromFull:  cfg.Mail.FromFull,
			FromQuick: cfg.Mail.FromQuick,
		},
		m,
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      bootstrap.BuildRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
