package types

import (
	"time"

	"github.com/homectl/homeyctl/pkg/homey"
)

// --- Request DTOs ---

// SetCapabilityRequest is the request body for PUT /devices/:id/capabilities/:capability
type SetCapabilityRequest struct {
	Value any `json:"value"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Homey     string    `json:"homey"`
	Timestamp time.Time `json:"timestamp"`
}

// DeviceSummary is the normalized device shape used in listings
type DeviceSummary struct {
	ID           string                           `json:"id"`
	Name         string                           `json:"name"`
	Zone         string                           `json:"zone"`
	Class        string                           `json:"class"`
	Capabilities []string                         `json:"capabilities"`
	State        map[string]homey.CapabilityState `json:"state"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []DeviceSummary `json:"devices"`
	Count   int             `json:"count"`
}

// DeviceResponse is returned from GET /devices/:id
type DeviceResponse struct {
	Device DeviceSummary `json:"device"`
}

// CapabilityResponse is returned from GET /devices/:id/capabilities/:capability
type CapabilityResponse struct {
	DeviceID   string `json:"deviceId"`
	Capability string `json:"capability"`
	Value      any    `json:"value"`
	Type       string `json:"type,omitempty"`
}

// SetCapabilityResponse is returned from PUT /devices/:id/capabilities/:capability
type SetCapabilityResponse struct {
	Success    bool   `json:"success"`
	DeviceID   string `json:"deviceId"`
	Capability string `json:"capability"`
	Value      any    `json:"value"`
}

// ListFlowsResponse is returned from GET /flows
type ListFlowsResponse struct {
	Flows []homey.Flow `json:"flows"`
	Count int          `json:"count"`
}

// ToSummary normalizes a platform device, defaulting absent fields.
func ToSummary(d *homey.Device) DeviceSummary {
	s := DeviceSummary{
		ID:           d.ID,
		Name:         d.Name,
		Zone:         d.ZoneName,
		Class:        d.Class,
		Capabilities: d.Capabilities,
		State:        d.CapabilitiesObj,
	}
	if s.Zone == "" {
		s.Zone = "Unknown"
	}
	if s.Class == "" {
		s.Class = "Unknown"
	}
	if s.Capabilities == nil {
		s.Capabilities = []string{}
	}
	if s.State == nil {
		s.State = map[string]homey.CapabilityState{}
	}
	return s
}
