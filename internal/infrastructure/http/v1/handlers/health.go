package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storecatalog/internal/infrastructure/http/v1/dto"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	storage Pinger
	driver  string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(storage Pinger, driver string) *HealthHandler {
	return &HealthHandler{storage: storage, driver: driver}
}

// Live handles liveness probe.
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Ready handles readiness probe.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.storage.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status: "error",
			Checks: map[string]string{h.driver: "unhealthy: " + err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Checks: map[string]string{h.driver: "healthy"},
	})
}
