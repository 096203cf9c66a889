package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	sheetsReady func() bool
}

func NewHealthHandler(sheetsReady func() bool) *HealthHandler {
	return &HealthHandler{
		sheetsReady: sheetsReady,
	}
}

// Healthcheck reports liveness. A missing sheets client is flagged but does
// not make the service unhealthy: the webhook route works without it.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	body := gin.H{"status": "ok"}
	if !h.sheetsReady() {
		body["sheets"] = "unconfigured"
	}

	c.JSON(http.StatusOK, body)
}
