package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleControlDevice is a pure templating handler: no I/O, no state.
func (s *Server) handleControlDevice(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	deviceName := request.Params.Arguments["deviceName"]
	if deviceName == "" {
		return nil, fmt.Errorf("deviceName is required")
	}

	action := request.Params.Arguments["action"]
	if action == "" {
		action = "toggle"
	}

	var instruction string
	switch action {
	case "on":
		instruction = "turn it on by calling toggle_device with value true"
	case "off":
		instruction = "turn it off by calling toggle_device with value false"
	case "toggle":
		instruction = "toggle it by calling toggle_device without an explicit value"
	default:
		return nil, fmt.Errorf("action must be one of on, off, toggle (got %q)", action)
	}

	text := fmt.Sprintf(
		"First call the list_devices tool and find the Homey device named %q to get its deviceId. Then %s.",
		deviceName, instruction,
	)

	return mcp.NewGetPromptResult(
		fmt.Sprintf("Control the device named %q", deviceName),
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
