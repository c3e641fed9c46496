package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by store backends.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	backend Pinger
}

func NewHealthHandler(backend Pinger) *HealthHandler {
	return &HealthHandler{backend: backend}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed", "store", h.backend.Name(), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "store": h.backend.Name()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": h.backend.Name()})
}
