package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/internal/logger"
)

// Pinger reports whether a backing store is reachable
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping   Pinger
	logger *zap.Logger
}

func NewHealthHandler(ping Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, logger: logger.OrNop(log)}
}

// HealthCheck returns the health status of the API and its database
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Warn("health check failed",
			zap.String("request_id", requestid.Get(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "ok",
	})
}
