package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/drcity/portal/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	// APIVersion is the current version of the API
	APIVersion = "0.1.0"
	// HealthCheckTimeout is the timeout for database health checks
	HealthCheckTimeout = 2 * time.Second
)

// Pinger checks a backing connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CatalogStatus reports how many sites are loaded.
type CatalogStatus interface {
	Len() int
}

// HealthHandler handles health check and readiness endpoints.
type HealthHandler struct {
	catalog   CatalogStatus
	db        Pinger
	startTime time.Time
	env       string
}

// NewHealthHandler creates a new HealthHandler instance. db is nil unless the
// catalog is read from PostgreSQL.
func NewHealthHandler(catalog CatalogStatus, db Pinger, env string) *HealthHandler {
	return &HealthHandler{
		catalog:   catalog,
		db:        db,
		startTime: time.Now(),
		env:       env,
	}
}

// HealthResponse represents the basic health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status   string `json:"status"`
	Catalog  string `json:"catalog"`
	Database string `json:"database,omitempty"`
}

// InfoResponse represents the API information response.
type InfoResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
	Sites       int    `json:"sites"`
}

// Health handles GET /health endpoint.
// It always returns 200 OK and is used for liveness checks.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// Ready handles GET /health/ready endpoint.
// The service is ready once the catalog holds at least one site and, for the
// postgres source, the database answers a ping.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.catalog == nil || h.catalog.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:  "not_ready",
			Catalog: "not_loaded",
		})
		return
	}

	if h.db == nil {
		c.JSON(http.StatusOK, ReadyResponse{
			Status:  "ready",
			Catalog: "loaded",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), HealthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Database health check failed", err, map[string]interface{}{
				"timeout": HealthCheckTimeout.String(),
			})
		}

		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:   "not_ready",
			Catalog:  "loaded",
			Database: "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status:   "ready",
		Catalog:  "loaded",
		Database: "connected",
	})
}

// Info handles GET /api/v1/info endpoint.
func (h *HealthHandler) Info(c *gin.Context) {
	sites := 0
	if h.catalog != nil {
		sites = h.catalog.Len()
	}

	c.JSON(http.StatusOK, InfoResponse{
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(time.Since(h.startTime)),
		Sites:       sites,
	})
}

// formatUptime formats a duration into a human-readable string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
