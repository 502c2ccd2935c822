package homey

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigFromEnv_PrefersHomeyPrefix(t *testing.T) {
	t.Setenv("CLIENT_ID", "bare-id")
	t.Setenv("HOMEY_CLIENT_ID", "prefixed-id")
	t.Setenv("HOMEY_CLIENT_SECRET", "secret")
	t.Setenv("HOMEY_API_URL", "")

	cfg := ConfigFromEnv()
	if cfg.ClientID != "prefixed-id" {
		t.Errorf("expected HOMEY_CLIENT_ID to win, got %q", cfg.ClientID)
	}
}

func TestConfigFromEnv_FallsBackToBareNames(t *testing.T) {
	t.Setenv("HOMEY_CLIENT_ID", "")
	t.Setenv("HOMEY_CLIENT_SECRET", "")
	t.Setenv("CLIENT_ID", "bare-id")
	t.Setenv("CLIENT_SECRET", "bare-secret")
	t.Setenv("HOMEY_API_URL", "")

	cfg := ConfigFromEnv()
	if cfg.ClientID != "bare-id" || cfg.ClientSecret != "bare-secret" {
		t.Errorf("expected bare names as fallback, got %q/%q", cfg.ClientID, cfg.ClientSecret)
	}
}

func TestConfigFromEnv_DefaultAPIURL(t *testing.T) {
	t.Setenv("HOMEY_API_URL", "")

	cfg := ConfigFromEnv()
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("expected default API URL, got %q", cfg.APIURL)
	}
}

func TestConfig_ValidateMissingCredentials(t *testing.T) {
	cfg := Config{ClientSecret: "secret"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing client id")
	}
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if !strings.Contains(err.Error(), "HOMEY_CLIENT_ID") {
		t.Errorf("error should name the missing credential, got %q", err.Error())
	}
}

func TestConfig_ValidateComplete(t *testing.T) {
	cfg := Config{ClientID: "id", ClientSecret: "secret"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestConfig_MergeFillsGaps(t *testing.T) {
	cfg := Config{ClientID: "env-id", APIURL: DefaultAPIURL}
	cfg.Merge(Config{
		ClientID:     "profile-id",
		ClientSecret: "profile-secret",
		APIURL:       "https://homey.local",
	})

	if cfg.ClientID != "env-id" {
		t.Errorf("env value should win, got %q", cfg.ClientID)
	}
	if cfg.ClientSecret != "profile-secret" {
		t.Errorf("profile should fill the gap, got %q", cfg.ClientSecret)
	}
	if cfg.APIURL != "https://homey.local" {
		t.Errorf("profile URL should replace the default, got %q", cfg.APIURL)
	}
}

func TestConfig_NormalizeTrimsTrailingSlash(t *testing.T) {
	cfg := Config{ClientID: "id", ClientSecret: "s", APIURL: "https://homey.local/"}
	cfg.normalize()
	if cfg.APIURL != "https://homey.local" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIURL)
	}
}

func TestStaticTokenProvider_ReturnsSecret(t *testing.T) {
	p := NewStaticTokenProvider(Config{ClientID: "id", ClientSecret: "super-secret"})
	token, err := p.Token(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if token != "super-secret" {
		t.Errorf("expected client secret as token, got %q", token)
	}
}

func TestStaticTokenProvider_MissingCredentials(t *testing.T) {
	p := NewStaticTokenProvider(Config{})
	if _, err := p.Token(t.Context()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
