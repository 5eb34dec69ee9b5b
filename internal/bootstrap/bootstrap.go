package bootstrap

import (
	"io"
	"net/http"

	"github.com/ecomshop/shop-api/internal/config"
	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/ecomshop/shop-api/internal/shared/metrics"
	"github.com/ecomshop/shop-api/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup
type Bootstrap struct {
	cfg     *config.Config
	metrics *metrics.Registry
}

// NewBootstrap creates a new bootstrap instance. registry may be nil when
// metrics are disabled.
func NewBootstrap(cfg *config.Config, registry *metrics.Registry) *Bootstrap {
	return &Bootstrap{
		cfg:     cfg,
		metrics: registry,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	// Essential middleware (common for all projects)
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout)) // 30 second global timeout
	engine.Use(middleware.LoggerMiddleware())
	if b.metrics != nil {
		engine.Use(middleware.Metrics(b.metrics))
	}

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	logger.FromContext(c.Request.Context()).Error("panic recovered",
		"panic", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
