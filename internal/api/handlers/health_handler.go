package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/pkg/response"
)

type HealthHandler struct {
	backend string
	ping    func(ctx context.Context) error
}

// NewHealthHandler reports on the named store; ping may be nil.
func NewHealthHandler(backend string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{backend: backend, ping: ping}
}

// Healthz godoc
// @Summary Liveness and store health
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "store unavailable: " + err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Backend: h.backend})
}
