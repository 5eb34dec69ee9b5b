package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/ecomshop/shop-api/internal/config"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 5 * time.Second

// Handler serves meta endpoints (health check)
type Handler struct {
	cfg *config.Config
	db  *database.DB
}

func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

type serviceInfo struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Port        int    `json:"port,omitempty"`
}

type dependencyCheck struct {
	Status    string `json:"status"`
	Driver    string `json:"driver,omitempty"`
	LatencyMs *int64 `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

type healthReport struct {
	Status  string                     `json:"status"`
	Service serviceInfo                `json:"service"`
	Checks  map[string]dependencyCheck `json:"checks"`
}

// Health reports database reachability and the configured cache and event
// backends. Only the database decides the overall status.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	report := healthReport{
		Status: "healthy",
		Service: serviceInfo{
			Name:        h.cfg.App.Name,
			Environment: h.cfg.App.Env,
			Port:        h.cfg.App.Port,
		},
		Checks: map[string]dependencyCheck{
			"cache":  {Status: "configured", Driver: h.cfg.Cache.Driver},
			"events": eventsCheck(h.cfg.Events),
		},
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Error("health check failed", "error", err)

		report.Status = "unhealthy"
		report.Service.Port = 0
		report.Checks["database"] = dependencyCheck{
			Status: "down",
			Driver: h.cfg.Database.Driver,
			Error:  err.Error(),
		}
		c.JSON(http.StatusServiceUnavailable, report)
		return
	}

	latency := time.Since(start).Milliseconds()
	report.Checks["database"] = dependencyCheck{
		Status:    "up",
		Driver:    h.cfg.Database.Driver,
		LatencyMs: &latency,
	}
	c.JSON(http.StatusOK, report)
}

func eventsCheck(cfg config.EventsConfig) dependencyCheck {
	if !cfg.Enabled {
		return dependencyCheck{Status: "disabled"}
	}
	return dependencyCheck{Status: "configured", Driver: "kafka"}
}
