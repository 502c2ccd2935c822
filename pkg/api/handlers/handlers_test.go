package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/homectl/homeyctl/pkg/api"
	"github.com/homectl/homeyctl/pkg/api/types"
	"github.com/homectl/homeyctl/pkg/homey"
	"github.com/homectl/homeyctl/pkg/homey/schema"
)

func fixtureRouter() (*api.Router, *homey.FixtureClient) {
	devices, flows := homey.DefaultFixtures()
	client := homey.NewFixtureClient(devices, flows)
	return api.NewRouter(client, schema.NewValidator()), client
}

func doRequest(r *api.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth_Configured(t *testing.T) {
	r, _ := fixtureRouter()

	rec := doRequest(r, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp types.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "healthy" || resp.Homey != "configured" {
		t.Errorf("unexpected health response: %+v", resp)
	}
}

func TestHealth_Unconfigured(t *testing.T) {
	// HTTP client without credentials reports not ready
	client := homey.NewHTTPClient(homey.Config{})
	r := api.NewRouter(client, schema.NewValidator())

	rec := doRequest(r, http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestListDevices(t *testing.T) {
	r, _ := fixtureRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/devices", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.ListDevicesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != len(resp.Devices) {
		t.Errorf("count %d does not match devices length %d", resp.Count, len(resp.Devices))
	}
	if resp.Count == 0 {
		t.Error("expected fixture devices in listing")
	}
	for _, d := range resp.Devices {
		if d.Zone == "" || d.Class == "" {
			t.Errorf("device %q missing normalized fields: %+v", d.ID, d)
		}
	}
}

func TestGetDevice_NotFound(t *testing.T) {
	r, _ := fixtureRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/devices/ghost", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp types.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "not_found" {
		t.Errorf("expected not_found, got %q", resp.Error)
	}
}

func TestGetCapability(t *testing.T) {
	r, _ := fixtureRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/devices/light-living-room/capabilities/onoff", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.CapabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Capability != "onoff" || resp.Value != false {
		t.Errorf("unexpected capability response: %+v", resp)
	}
	if resp.Type != "boolean" {
		t.Errorf("expected boolean type tag, got %q", resp.Type)
	}
}

func TestGetCapability_Unknown(t *testing.T) {
	r, _ := fixtureRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/devices/light-living-room/capabilities/volume_set", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSetCapability(t *testing.T) {
	r, client := fixtureRouter()

	rec := doRequest(r, http.MethodPut,
		"/api/v1/devices/light-living-room/capabilities/onoff", `{"value":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.SetCapabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Value != true {
		t.Errorf("unexpected response: %+v", resp)
	}

	d, err := client.GetDevice(context.Background(), "light-living-room")
	if err != nil {
		t.Fatal(err)
	}
	if d.CapabilitiesObj["onoff"].Value != true {
		t.Error("write did not reach the client")
	}
}

func TestSetCapability_TypeMismatch(t *testing.T) {
	r, _ := fixtureRouter()

	// onoff is boolean; a string must be rejected before any write
	rec := doRequest(r, http.MethodPut,
		"/api/v1/devices/light-living-room/capabilities/onoff", `{"value":"on"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "validation_error" {
		t.Errorf("expected validation_error, got %q", resp.Error)
	}
}

func TestSetCapability_UnknownCapability(t *testing.T) {
	r, _ := fixtureRouter()

	rec := doRequest(r, http.MethodPut,
		"/api/v1/devices/light-living-room/capabilities/volume_set", `{"value":0.5}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListFlows(t *testing.T) {
	r, _ := fixtureRouter()

	rec := doRequest(r, http.MethodGet, "/api/v1/flows", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.ListFlowsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != len(resp.Flows) || resp.Count == 0 {
		t.Errorf("unexpected flows response: count=%d len=%d", resp.Count, len(resp.Flows))
	}
}
