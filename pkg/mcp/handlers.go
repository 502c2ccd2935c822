package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/homectl/homeyctl/pkg/homey"
)

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := s.client.ListDevices(ctx)
	if err != nil {
		return errorResult("Failed to list Homey devices", err.Error(), ""), nil
	}

	infos := make([]DeviceInfo, 0, len(devices))
	for i := range devices {
		infos = append(infos, DeviceToInfo(&devices[i]))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleToggleDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	deviceID, _ := args["deviceId"].(string)
	if deviceID == "" {
		// Validated before any upstream call
		return errorResult("Failed to toggle Homey device", "deviceId is required", ""), nil
	}

	capability, _ := args["capability"].(string)
	if capability == "" {
		capability = "onoff"
	}

	target, explicit := args["value"]
	if !explicit {
		// No explicit value: read the current state and invert it
		resolved, err := s.resolveToggleValue(ctx, deviceID, capability)
		if err != nil {
			return errorResult("Failed to toggle Homey device", err.Error(), deviceID), nil
		}
		target = resolved
	}

	if err := s.client.SetCapability(ctx, deviceID, capability, target); err != nil {
		return errorResult("Failed to toggle Homey device", err.Error(), deviceID), nil
	}

	out := ToggleDeviceOutput{
		Success:    true,
		DeviceID:   deviceID,
		Capability: capability,
		Value:      target,
		Message:    fmt.Sprintf("Successfully set %s to %v", capability, target),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// resolveToggleValue fetches the device and returns the negation of the
// capability's current boolean value. A capability that is missing gets a
// distinct error rather than the misleading "not boolean" message.
func (s *Server) resolveToggleValue(ctx context.Context, deviceID, capability string) (bool, error) {
	d, err := s.client.GetDevice(ctx, deviceID)
	if err != nil {
		return false, err
	}

	state, ok := d.CapabilitiesObj[capability]
	if !ok {
		return false, fmt.Errorf("capability %q not found on device %q", capability, deviceID)
	}

	current, ok := state.Value.(bool)
	if !ok {
		return false, fmt.Errorf("Cannot toggle capability %q - current value is not boolean", capability)
	}

	return !current, nil
}

func (s *Server) handleListFlows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	flows, err := s.client.ListFlows(ctx)
	if err != nil {
		return errorResult("Failed to list Homey flows", err.Error(), ""), nil
	}

	if flows == nil {
		flows = []homey.Flow{}
	}

	out := ListFlowsOutput{Flows: flows}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

// errorResult wraps the uniform failure payload in an isError tool result.
func errorResult(summary, details, deviceID string) *mcp.CallToolResult {
	return mcp.NewToolResultError(formatJSON(ErrorOutput{
		Error:    summary,
		Details:  details,
		DeviceID: deviceID,
	}))
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
