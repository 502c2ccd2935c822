package homey

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotConfigured indicates required credentials are missing
	ErrNotConfigured = errors.New("homey credentials not configured")

	// ErrNotFound indicates a device was not found
	ErrNotFound = errors.New("device not found")

	// ErrCapabilityNotFound indicates a device does not expose a capability
	ErrCapabilityNotFound = errors.New("capability not found")
)

// APIError is returned for any non-2xx response from the platform API.
// It carries the status code, status text, and raw response body so callers
// can surface all three.
type APIError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homey API error: %d %s - %s", e.StatusCode, e.StatusText, e.Body)
}

// IsNotFound reports whether err is a local not-found error or an
// upstream 404.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCapabilityNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
