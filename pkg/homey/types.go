package homey

// Device is a read-only snapshot of a Homey device as returned by the
// platform API. Devices are fetched fresh on every call; nothing is cached.
type Device struct {
	ID              string                     `json:"id"`              // Unique device identifier
	Name            string                     `json:"name"`            // User-facing display name
	Zone            string                     `json:"zone"`            // Zone identifier
	ZoneName        string                     `json:"zoneName"`        // Zone display name (e.g. "Living Room")
	Class           string                     `json:"class"`           // Device class (light, socket, sensor, ...)
	Capabilities    []string                   `json:"capabilities"`    // Ordered capability identifiers
	CapabilitiesObj map[string]CapabilityState `json:"capabilitiesObj"` // Capability id -> current state
}

// CapabilityState is the current state of a single capability.
// Value is boolean, number, or string depending on the capability type.
type CapabilityState struct {
	Value any    `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Flow is an automation rule: a trigger plus an ordered list of actions.
// Flows are listing-only; no mutation operation exists in this surface.
type Flow struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Enabled bool     `json:"enabled"`
	Trigger string   `json:"trigger"`
	Actions []string `json:"actions"`
}

// Capability type tags as reported by the platform.
const (
	CapabilityTypeBoolean = "boolean"
	CapabilityTypeNumber  = "number"
	CapabilityTypeString  = "string"
)

// Common device class constants.
const (
	ClassLight      = "light"
	ClassSocket     = "socket"
	ClassSensor     = "sensor"
	ClassThermostat = "thermostat"
	ClassLock       = "lock"
)
