package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose reachability /healthz reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			ErrorHandler(c, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	MessageHandler(c, http.StatusOK, "ok")
}
