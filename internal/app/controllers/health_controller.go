package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearttune-http-service/internal/domain/services/container"
)

// HealthController answers liveness probes
type HealthController struct{}

// HandleHealthFunc returns a Gin handler for health endpoints
func HandleHealthFunc(_ *container.ServiceContainer, method string) gin.HandlerFunc {
	controller := &HealthController{}
	return func(ctx *gin.Context) {
		switch method {
		case "ping":
			controller.Ping(ctx)
		default:
			ctx.Status(http.StatusNotFound)
		}
	}
}

// Ping reports the service as up
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}
