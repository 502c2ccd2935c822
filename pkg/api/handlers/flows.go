package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homectl/homeyctl/pkg/api/types"
	"github.com/homectl/homeyctl/pkg/homey"
)

// FlowsHandler handles flow listing endpoints
type FlowsHandler struct {
	client homey.Client
}

// NewFlowsHandler creates a new flows handler
func NewFlowsHandler(client homey.Client) *FlowsHandler {
	return &FlowsHandler{client: client}
}

// ListFlows handles GET /flows
// @Summary      List all flows
// @Description  Returns all Homey automation flows verbatim
// @Tags         flows
// @Produce      json
// @Success      200  {object}  types.ListFlowsResponse
// @Failure      502  {object}  types.ErrorResponse  "Upstream platform error"
// @Failure      503  {object}  types.ErrorResponse  "Credentials missing"
// @Router       /flows [get]
func (h *FlowsHandler) ListFlows(c *gin.Context) {
	ctx := c.Request.Context()

	flows, err := h.client.ListFlows(ctx)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	if flows == nil {
		flows = []homey.Flow{}
	}

	c.JSON(http.StatusOK, types.ListFlowsResponse{
		Flows: flows,
		Count: len(flows),
	})
}
