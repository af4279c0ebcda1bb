package handlers

import (
	"net/http"

	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// HealthCheckHandler reports liveness plus the last dependency snapshot. It answers
// 200 while the process is up; "degraded" flags an unreachable dependency.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := "ok"
	var snapshot utils.HealthStatus
	if h.Monitor != nil {
		snapshot = h.Monitor.Status()
		if !snapshot.Healthy() {
			status = "degraded"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       status,
		"dependencies": snapshot.Dependencies,
		"checkedAt":    snapshot.CheckedAt,
	})
}

// RootHandler handles GET /.
func RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "API is running")
}
