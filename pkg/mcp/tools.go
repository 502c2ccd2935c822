package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// toggleDeviceSchema is declared as a raw schema because "value" accepts
// boolean, number, or string, which the property builders cannot express.
var toggleDeviceSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"deviceId": {
			"type": "string",
			"description": "Device identifier (use list_devices to find it)"
		},
		"capability": {
			"type": "string",
			"description": "Capability to set (default: onoff)",
			"default": "onoff"
		},
		"value": {
			"type": ["boolean", "number", "string"],
			"description": "Explicit value to set. When omitted, the current boolean value is inverted."
		}
	},
	"required": ["deviceId"]
}`)

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List all Homey devices with their zone, class, capabilities, and current state"),
		),
		s.handleListDevices,
	)

	// Toggle / set a device capability
	s.mcpServer.AddTool(
		mcp.NewToolWithRawSchema("toggle_device",
			"Toggle or set a capability on a Homey device. Without an explicit value, the current boolean value is inverted.",
			toggleDeviceSchema,
		),
		s.handleToggleDevice,
	)

	// List flows
	s.mcpServer.AddTool(
		mcp.NewTool("list_flows",
			mcp.WithDescription("List all Homey automation flows with their triggers and actions"),
		),
		s.handleListFlows,
	)
}

// registerPrompts registers all MCP prompts with the server
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(mcp.NewPrompt("control-device",
		mcp.WithPromptDescription("Generate an instruction to control a Homey device by name"),
		mcp.WithArgument("deviceName",
			mcp.ArgumentDescription("Display name of the device (e.g. 'Living Room Light')"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("action",
			mcp.ArgumentDescription("Action to perform: on, off, or toggle (default: toggle)"),
		),
	), s.handleControlDevice)
}
