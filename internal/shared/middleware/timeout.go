package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/ecomshop/shop-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout bounds the request context. Handlers and repositories observe it
// through c.Request.Context(); no response is written here because the
// handler may already have sent one.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.FromContext(ctx).Warn("Request deadline exceeded",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}

// IsTimeout reports whether the request context deadline has passed
func IsTimeout(c *gin.Context) bool {
	return errors.Is(c.Request.Context().Err(), context.DeadlineExceeded)
}
