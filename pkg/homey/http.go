package homey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 15 * time.Second

// HTTPClient talks to the Homey platform REST API with bearer-token
// authentication. Every operation is a single attempt with no retries;
// cancellation and deadlines come from the caller's context.
type HTTPClient struct {
	cfg        Config
	tokens     TokenProvider
	httpClient *http.Client
}

// HTTPClientOption customizes an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithHTTPClient overrides the underlying http.Client (used in tests).
func WithHTTPClient(hc *http.Client) HTTPClientOption {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithTokenProvider overrides the token provider.
func WithTokenProvider(tp TokenProvider) HTTPClientOption {
	return func(c *HTTPClient) { c.tokens = tp }
}

// NewHTTPClient creates a Client backed by the Homey REST API.
func NewHTTPClient(cfg Config, opts ...HTTPClientOption) *HTTPClient {
	cfg.normalize()
	c := &HTTPClient{
		cfg:        cfg,
		tokens:     NewStaticTokenProvider(cfg),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready reports whether credentials are configured.
func (c *HTTPClient) Ready() bool {
	return c.cfg.Validate() == nil
}

// ListDevices fetches all devices from GET /api/devices.
func (c *HTTPClient) ListDevices(ctx context.Context) ([]Device, error) {
	var out struct {
		Result []Device `json:"result"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/devices", nil, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// GetDevice fetches a single device from GET /api/devices/{id}.
func (c *HTTPClient) GetDevice(ctx context.Context, id string) (*Device, error) {
	var out struct {
		Result Device `json:"result"`
	}
	endpoint := "/api/devices/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

// SetCapability writes a capability value via
// PUT /api/devices/{id}/capabilities/{capability}. The response body is
// ignored beyond success or failure.
func (c *HTTPClient) SetCapability(ctx context.Context, id, capability string, value any) error {
	endpoint := fmt.Sprintf("/api/devices/%s/capabilities/%s",
		url.PathEscape(id), url.PathEscape(capability))
	body := map[string]any{"value": value}
	return c.do(ctx, http.MethodPut, endpoint, body, nil)
}

// ListFlows fetches all flows from GET /api/flows.
func (c *HTTPClient) ListFlows(ctx context.Context) ([]Flow, error) {
	var out struct {
		Result []Flow `json:"result"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/flows", nil, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// do performs a single authenticated request against {APIURL}{endpoint}.
// The token is resolved first so missing credentials fail before any
// network traffic. Non-2xx responses become an *APIError carrying the
// status code, status text, and raw body.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil && method != http.MethodGet {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.APIURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(data),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}
