package middleware

import (
	"log/slog"
	"time"

	sharedContext "github.com/ecomshop/shop-api/internal/shared/context"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware binds a request-scoped slog logger to the request context
// and writes one access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))

		// Store logger in context for use in handlers/services/repositories
		ctx := logger.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}

		if raw != "" {
			fields = append(fields, "query", raw)
		}
		if memberID, ok := sharedContext.GetMemberID(c); ok {
			fields = append(fields, "member_id", memberID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		msg := "Request processed"

		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}
