package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

// HealthHandler answers liveness probes
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	ping Pinger
	now  func() time.Time
}

// NewHealthHandler creates a new HealthHandler. A nil ping always reports UP.
func NewHealthHandler(ping Pinger) HealthHandler {
	return &healthHandler{ping: ping, now: time.Now}
}

// Health reports UP while the database answers a ping
// @Summary Health check
// @Description Report UP when the database answers a ping, DOWN otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (handler *healthHandler) Health(ctx *gin.Context) {
	if handler.ping != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := handler.ping(pingCtx); err != nil {
			_ = ctx.Error(err)
			ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "DOWN", Timestamp: handler.now()})
			return
		}
	}
	ctx.JSON(http.StatusOK, HealthResponse{Status: "UP", Timestamp: handler.now()})
}
