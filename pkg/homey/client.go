package homey

import "context"

// Client defines the interface for talking to a Homey device platform.
// Two implementations exist: HTTPClient against the real REST API and
// FixtureClient backed by in-memory data for demos and tests.
type Client interface {
	// ListDevices returns all devices known to the platform
	ListDevices(ctx context.Context) ([]Device, error)

	// GetDevice returns a single device by ID
	GetDevice(ctx context.Context, id string) (*Device, error)

	// SetCapability writes a capability value on a device
	SetCapability(ctx context.Context, id, capability string, value any) error

	// ListFlows returns all automation flows
	ListFlows(ctx context.Context) ([]Flow, error)

	// Ready reports whether the client is usable (credentials configured)
	Ready() bool
}
