package mcp

import (
	"github.com/homectl/homeyctl/pkg/homey"
)

// --- List Devices Tool ---

// ListDevicesOutput is the success payload for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices"`
	Count   int          `json:"count"`
}

// DeviceInfo is the normalized device shape returned by list_devices
type DeviceInfo struct {
	ID           string                           `json:"id"`
	Name         string                           `json:"name"`
	Zone         string                           `json:"zone"`
	Class        string                           `json:"class"`
	Capabilities []string                         `json:"capabilities"`
	State        map[string]homey.CapabilityState `json:"state"`
}

// --- Toggle Device Tool ---

// ToggleDeviceOutput is the success payload for the toggle_device tool
type ToggleDeviceOutput struct {
	Success    bool   `json:"success"`
	DeviceID   string `json:"deviceId"`
	Capability string `json:"capability"`
	Value      any    `json:"value"`
	Message    string `json:"message"`
}

// --- List Flows Tool ---

// ListFlowsOutput is the success payload for the list_flows tool
type ListFlowsOutput struct {
	Flows []homey.Flow `json:"flows"`
}

// --- Error envelope ---

// ErrorOutput is the uniform failure payload carried inside an isError
// tool result. DeviceID is set only where an identifying field exists.
type ErrorOutput struct {
	Error    string `json:"error"`
	Details  string `json:"details"`
	DeviceID string `json:"deviceId,omitempty"`
}

// DeviceToInfo normalizes a platform device, applying the documented
// defaults for absent fields.
func DeviceToInfo(d *homey.Device) DeviceInfo {
	info := DeviceInfo{
		ID:           d.ID,
		Name:         d.Name,
		Zone:         d.ZoneName,
		Class:        d.Class,
		Capabilities: d.Capabilities,
		State:        d.CapabilitiesObj,
	}
	if info.Zone == "" {
		info.Zone = "Unknown"
	}
	if info.Class == "" {
		info.Class = "Unknown"
	}
	if info.Capabilities == nil {
		info.Capabilities = []string{}
	}
	if info.State == nil {
		info.State = map[string]homey.CapabilityState{}
	}
	return info
}
