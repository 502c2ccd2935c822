package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homectl/homeyctl/pkg/api/types"
	"github.com/homectl/homeyctl/pkg/homey"
)

// DevicesHandler handles device listing endpoints
type DevicesHandler struct {
	client homey.Client
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(client homey.Client) *DevicesHandler {
	return &DevicesHandler{client: client}
}

// ListDevices handles GET /devices
// @Summary      List all devices
// @Description  Returns all Homey devices with their zone, class, and current state
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Failure      502  {object}  types.ErrorResponse  "Upstream platform error"
// @Failure      503  {object}  types.ErrorResponse  "Credentials missing"
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	ctx := c.Request.Context()

	devices, err := h.client.ListDevices(ctx)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	result := make([]types.DeviceSummary, 0, len(devices))
	for i := range devices {
		result = append(result, types.ToSummary(&devices[i]))
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: result,
		Count:   len(result),
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get a device
// @Description  Returns a single Homey device by ID
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Upstream platform error"
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	ctx := c.Request.Context()

	d, err := h.client.GetDevice(ctx, c.Param("id"))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{Device: types.ToSummary(d)})
}

// writeUpstreamError maps client errors to gateway responses: not-found to
// 404, missing credentials to 503, upstream API failures to 502, everything
// else to 500.
func writeUpstreamError(c *gin.Context, err error) {
	switch {
	case homey.IsNotFound(err):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, homey.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   "not_configured",
			Message: err.Error(),
		})
	default:
		var apiErr *homey.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, types.ErrorResponse{
				Error:   "upstream_error",
				Message: apiErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
