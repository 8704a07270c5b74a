package middleware

import (
	"context"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout attaches a deadline to the request context.
// Database calls made with the request context are cancelled once it passes.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			logger.FromContext(ctx).Warn("request deadline exceeded",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}

// IsTimeout reports whether the request deadline has passed
func IsTimeout(c *gin.Context) bool {
	return c.Request.Context().Err() == context.DeadlineExceeded
}
