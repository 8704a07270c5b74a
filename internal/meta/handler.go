package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/config"
	"github.com/changhyeonkim/mediatheque-api/internal/loan"
	"github.com/changhyeonkim/mediatheque-api/internal/model"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/database"
	"github.com/gin-gonic/gin"
)

// Handler handles meta endpoints (health check, loan policy)
type Handler struct {
	cfg *config.Config
	db  *database.DB
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	start := time.Now()

	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("health check failed", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"service": gin.H{
				"name":        h.cfg.App.Name,
				"environment": h.cfg.App.Env,
			},
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"driver": h.cfg.Database.Driver,
					"error":  err.Error(),
				},
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
			"port":        h.cfg.App.Port,
		},
		"checks": gin.H{
			"database": gin.H{
				"status":     "up",
				"driver":     h.cfg.Database.Driver,
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}

// LoanPolicy reports the borrowing rules in effect
func (h *Handler) LoanPolicy(c *gin.Context) {
	policy := loan.PolicyFrom(h.cfg.Loan)

	circulating := make([]string, 0, len(model.MediaTypes))
	for _, t := range model.MediaTypes {
		if t.IsCirculating() {
			circulating = append(circulating, t.String())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"loanPeriodDays": policy.PeriodDays,
		"maxActiveLoans": policy.MaxActiveLoans,
		"mediaTypes":     circulating,
	})
}
