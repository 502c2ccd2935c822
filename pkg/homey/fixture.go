package homey

import (
	"context"
	"fmt"
	"sync"
)

// FixtureClient is an in-memory Client used for demos and tests. It holds a
// fixed set of devices and flows and applies capability writes to its own
// copy of the state. The surrounding transport may interleave calls, so the
// device map is guarded by a mutex.
type FixtureClient struct {
	mu      sync.RWMutex
	devices map[string]*Device
	order   []string
	flows   []Flow
}

// NewFixtureClient creates a fixture client from the given devices and flows.
func NewFixtureClient(devices []Device, flows []Flow) *FixtureClient {
	c := &FixtureClient{
		devices: make(map[string]*Device, len(devices)),
		flows:   flows,
	}
	for i := range devices {
		d := devices[i]
		c.devices[d.ID] = &d
		c.order = append(c.order, d.ID)
	}
	return c
}

// DefaultFixtures returns a small household of devices and flows, enough to
// exercise every tool without a Homey account.
func DefaultFixtures() ([]Device, []Flow) {
	devices := []Device{
		{
			ID:           "light-living-room",
			Name:         "Living Room Light",
			ZoneName:     "Living Room",
			Class:        ClassLight,
			Capabilities: []string{"onoff", "dim"},
			CapabilitiesObj: map[string]CapabilityState{
				"onoff": {Value: false, Type: CapabilityTypeBoolean},
				"dim":   {Value: 0.8, Type: CapabilityTypeNumber},
			},
		},
		{
			ID:           "thermostat-hallway",
			Name:         "Hallway Thermostat",
			ZoneName:     "Hallway",
			Class:        ClassThermostat,
			Capabilities: []string{"target_temperature", "measure_temperature"},
			CapabilitiesObj: map[string]CapabilityState{
				"target_temperature":  {Value: 20.5, Type: CapabilityTypeNumber},
				"measure_temperature": {Value: 19.8, Type: CapabilityTypeNumber},
			},
		},
		{
			ID:           "socket-coffee",
			Name:         "Coffee Machine",
			ZoneName:     "Kitchen",
			Class:        ClassSocket,
			Capabilities: []string{"onoff"},
			CapabilitiesObj: map[string]CapabilityState{
				"onoff": {Value: true, Type: CapabilityTypeBoolean},
			},
		},
	}
	flows := []Flow{
		{
			ID:      "flow-morning",
			Name:    "Good Morning",
			Enabled: true,
			Trigger: "Time is 07:00",
			Actions: []string{"Turn on Living Room Light", "Turn on Coffee Machine"},
		},
		{
			ID:      "flow-away",
			Name:    "Leaving Home",
			Enabled: false,
			Trigger: "Everyone left home",
			Actions: []string{"Turn off all lights", "Set thermostat to 16°C"},
		},
	}
	return devices, flows
}

func (c *FixtureClient) ListDevices(ctx context.Context) ([]Device, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Device, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneDevice(c.devices[id]))
	}
	return out, nil
}

func (c *FixtureClient) GetDevice(ctx context.Context, id string) (*Device, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.devices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	copied := cloneDevice(d)
	return &copied, nil
}

func (c *FixtureClient) SetCapability(ctx context.Context, id, capability string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.devices[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	state, ok := d.CapabilitiesObj[capability]
	if !ok {
		return fmt.Errorf("%w: %q on device %s", ErrCapabilityNotFound, capability, id)
	}
	state.Value = value
	d.CapabilitiesObj[capability] = state
	return nil
}

func (c *FixtureClient) ListFlows(ctx context.Context) ([]Flow, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Flow, len(c.flows))
	copy(out, c.flows)
	return out, nil
}

func (c *FixtureClient) Ready() bool { return true }

func cloneDevice(d *Device) Device {
	copied := *d
	copied.Capabilities = append([]string(nil), d.Capabilities...)
	copied.CapabilitiesObj = make(map[string]CapabilityState, len(d.CapabilitiesObj))
	for k, v := range d.CapabilitiesObj {
		copied.CapabilitiesObj[k] = v
	}
	return copied
}
