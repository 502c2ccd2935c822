package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homectl/homeyctl/pkg/api/types"
	"github.com/homectl/homeyctl/pkg/homey"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	client homey.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(client homey.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns gateway health and whether Homey credentials are configured
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Credentials missing"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	homeyStatus := "unconfigured"
	if h.client.Ready() {
		homeyStatus = "configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK

	if homeyStatus != "configured" {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Homey:     homeyStatus,
		Timestamp: time.Now(),
	})
}
