package bootstrap

import (
	"io"
	"net/http"

	"github.com/changhyeonkim/mediatheque-api/internal/config"
	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap builds the gin engine and its middleware chain
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with recovery, request id, CORS, timeout
// and request logging middleware, in that order
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler turns a panic into a 500 response
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	logger.FromContext(c.Request.Context()).Error("panic recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}

