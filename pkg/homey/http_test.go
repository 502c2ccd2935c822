package homey

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func testConfig(url string) Config {
	return Config{ClientID: "client-id", ClientSecret: "client-secret", APIURL: url}
}

func TestHTTPClient_ListDevices(t *testing.T) {
	var gotAuth, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if r.Method != http.MethodGet || r.URL.Path != "/api/devices" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"result":[
			{"id":"d1","name":"Lamp","zoneName":"Office","class":"light",
			 "capabilities":["onoff"],
			 "capabilitiesObj":{"onoff":{"value":true,"type":"boolean"}}}
		]}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(testConfig(ts.URL))
	devices, err := c.ListDevices(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer client-secret" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if len(devices) != 1 || devices[0].ID != "d1" {
		t.Fatalf("unexpected devices: %+v", devices)
	}
	if v, ok := devices[0].CapabilitiesObj["onoff"]; !ok || v.Value != true {
		t.Errorf("expected onoff=true, got %+v", devices[0].CapabilitiesObj)
	}
}

func TestHTTPClient_GetDevice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/devices/d1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"result":{"id":"d1","name":"Lamp"}}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(testConfig(ts.URL))
	d, err := c.GetDevice(context.Background(), "d1")
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "Lamp" {
		t.Errorf("expected Lamp, got %q", d.Name)
	}
}

func TestHTTPClient_SetCapability(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/api/devices/d1/capabilities/onoff" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if body["value"] != true {
			t.Errorf("expected value=true, got %v", body["value"])
		}
		_, _ = w.Write([]byte(`{"result":true}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(testConfig(ts.URL))
	if err := c.SetCapability(context.Background(), "d1", "onoff", true); err != nil {
		t.Fatal(err)
	}
}

func TestHTTPClient_ListFlows(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/flows" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"result":[
			{"id":"f1","name":"Morning","enabled":true,"trigger":"Time is 07:00","actions":["Lights on"]}
		]}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(testConfig(ts.URL))
	flows, err := c.ListFlows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(flows) != 1 || flows[0].Trigger != "Time is 07:00" {
		t.Fatalf("unexpected flows: %+v", flows)
	}
}

func TestHTTPClient_ErrorEmbedsStatusAndBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(testConfig(ts.URL))
	_, err := c.ListDevices(context.Background())
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 401 {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}

	msg := err.Error()
	for _, want := range []string{"401", "Unauthorized", "invalid_token"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
}

func TestHTTPClient_NotFoundIsDetectable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"device not found"}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(testConfig(ts.URL))
	_, err := c.GetDevice(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound should report true for upstream 404, got %v", err)
	}
}

func TestHTTPClient_MissingCredentialsFailBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	c := NewHTTPClient(Config{APIURL: ts.URL})
	_, err := c.ListDevices(context.Background())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no network call, got %d", n)
	}
	if c.Ready() {
		t.Error("client without credentials should not be ready")
	}
}
