package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homectl/homeyctl/pkg/api/types"
	"github.com/homectl/homeyctl/pkg/homey"
	"github.com/homectl/homeyctl/pkg/homey/schema"
)

// CapabilityHandler handles capability read/write endpoints
type CapabilityHandler struct {
	client    homey.Client
	validator *schema.Validator
}

// NewCapabilityHandler creates a new capability handler
func NewCapabilityHandler(client homey.Client, validator *schema.Validator) *CapabilityHandler {
	return &CapabilityHandler{client: client, validator: validator}
}

// GetCapability handles GET /devices/:id/capabilities/:capability
// @Summary      Get a capability value
// @Description  Returns the current value of one capability on a device
// @Tags         devices
// @Produce      json
// @Param        id          path      string  true  "Device ID"
// @Param        capability  path      string  true  "Capability ID (e.g. onoff)"
// @Success      200  {object}  types.CapabilityResponse
// @Failure      404  {object}  types.ErrorResponse  "Device or capability not found"
// @Failure      502  {object}  types.ErrorResponse  "Upstream platform error"
// @Router       /devices/{id}/capabilities/{capability} [get]
func (h *CapabilityHandler) GetCapability(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	capability := c.Param("capability")

	d, err := h.client.GetDevice(ctx, id)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	state, ok := d.CapabilitiesObj[capability]
	if !ok {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: fmt.Sprintf("capability %q not found on device %q", capability, id),
		})
		return
	}

	c.JSON(http.StatusOK, types.CapabilityResponse{
		DeviceID:   d.ID,
		Capability: capability,
		Value:      state.Value,
		Type:       state.Type,
	})
}

// SetCapability handles PUT /devices/:id/capabilities/:capability
// @Summary      Set a capability value
// @Description  Writes a capability value, validated against the capability's declared type
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id          path      string                      true  "Device ID"
// @Param        capability  path      string                      true  "Capability ID (e.g. onoff)"
// @Param        request     body      types.SetCapabilityRequest  true  "Value to set"
// @Success      200  {object}  types.SetCapabilityResponse
// @Failure      400  {object}  types.ErrorResponse  "Invalid or mistyped value"
// @Failure      404  {object}  types.ErrorResponse  "Device or capability not found"
// @Failure      502  {object}  types.ErrorResponse  "Upstream platform error"
// @Router       /devices/{id}/capabilities/{capability} [put]
func (h *CapabilityHandler) SetCapability(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	capability := c.Param("capability")

	var req types.SetCapabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	// The gateway reads the device anyway to resolve the capability, so
	// explicit values get type-checked here before the write.
	d, err := h.client.GetDevice(ctx, id)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	state, ok := d.CapabilitiesObj[capability]
	if !ok {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: fmt.Sprintf("capability %q not found on device %q", capability, id),
		})
		return
	}

	if err := h.validator.ValidateCapabilityValue(state.Type, req.Value); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := h.client.SetCapability(ctx, id, capability, req.Value); err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SetCapabilityResponse{
		Success:    true,
		DeviceID:   id,
		Capability: capability,
		Value:      req.Value,
	})
}
