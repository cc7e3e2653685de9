package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drcity/portal/api/internal/catalog"
	"github.com/drcity/portal/api/internal/config"
	"github.com/drcity/portal/api/internal/database"
	"github.com/drcity/portal/api/internal/handlers"
	"github.com/drcity/portal/api/internal/logger"
	"github.com/drcity/portal/api/internal/middleware"
	"github.com/drcity/portal/api/internal/repository"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout = 30 * time.Second
	catalogTimeout  = 10 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.NewWithLevel(cfg.Server.Env, cfg.Server.LogLevel, os.Stdout)
	log.Info("Starting DR City API", map[string]interface{}{
		"version":        handlers.APIVersion,
		"environment":    cfg.Server.Env,
		"port":           cfg.Server.Port,
		"catalog_source": cfg.Catalog.Source,
	})

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal("Failed to register request validators", err, nil)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// The database is only needed when the catalog lives in PostgreSQL
	var db *database.Database
	var pinger handlers.Pinger
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		db, err = database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database", err, map[string]interface{}{
				"host": cfg.Database.Host,
				"port": cfg.Database.Port,
				"name": cfg.Database.Name,
			})
		}
		defer db.Close()
		pinger = db

		log.Info("Database connection established", map[string]interface{}{
			"host":     cfg.Database.Host,
			"port":     cfg.Database.Port,
			"database": cfg.Database.Name,
			"pool_min": cfg.Database.PoolMin,
			"pool_max": cfg.Database.PoolMax,
		})
	}

	var querier database.Querier
	if db != nil {
		querier = db
	}
	source, err := repository.NewCatalogSource(cfg.Catalog, querier)
	if err != nil {
		log.Fatal("Invalid catalog configuration", err, nil)
	}

	loadCtx, cancelLoad := context.WithTimeout(ctx, catalogTimeout)
	sites, err := catalog.Load(loadCtx, source, cfg.Catalog.DefaultSite)
	cancelLoad()
	if err != nil {
		log.Fatal("Failed to load site catalog", err, map[string]interface{}{
			"source": source.Name(),
		})
	}
	log.Info("Site catalog loaded", map[string]interface{}{
		"source":       source.Name(),
		"sites":        sites.Len(),
		"default_site": sites.DefaultSite(),
	})

	// Initialize service layer
	store := services.NewSessionStore()
	siteService := services.NewSiteService(sites, log)
	sessionService := services.NewSessionService(sites, store, log)
	captureService := services.NewCaptureService(store, log)
	enquiryService := services.NewEnquiryService(sites, cfg.Enquiry.Delay, log)

	go sweepSessions(ctx, sessionService, cfg.Session, log)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	handlers.RegisterRoutes(router, handlers.Handlers{
		Health:   handlers.NewHealthHandler(sites, pinger, cfg.Server.Env),
		Sites:    handlers.NewSiteHandler(siteService),
		Enquiry:  handlers.NewEnquiryHandler(enquiryService),
		Sessions: handlers.NewSessionHandler(sessionService, siteService),
		Capture:  handlers.NewCaptureHandler(captureService),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}

// sweepSessions drops idle sessions until ctx is cancelled.
func sweepSessions(ctx context.Context, sessions services.SessionService, cfg config.SessionConfig, log *logger.Logger) {
	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Session sweeper stopped", nil)
			return
		case <-ticker.C:
			sessions.ExpireIdle(ctx, cfg.TTL)
		}
	}
}
