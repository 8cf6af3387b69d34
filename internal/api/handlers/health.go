// Package handlers contains the thin HTTP endpoints that sit beside the
// Socket.IO room service.
package handlers

import (
	"net/http"
	"time"

	"github.com/collabide/server/pkg/types"
	"github.com/gin-gonic/gin"
)

// Health reports process liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "ok",
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// AuthDisabled answers every auth route with a static 503. The room
// service runs without accounts; the frontend treats this as "auth off".
func AuthDisabled(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, types.SuccessResponse{
		Success: false,
		Message: "Auth is disabled",
	})
}
