package homey

import (
	"fmt"
	"os"
	"strings"
)

// DefaultAPIURL is the Homey cloud API endpoint used when no override is set.
const DefaultAPIURL = "https://api.athom.com"

// Config holds the credentials and endpoint for the Homey platform API.
type Config struct {
	ClientID     string
	ClientSecret string
	APIURL       string
}

// ConfigFromEnv reads configuration from the environment. HOMEY_-prefixed
// variables take precedence over the bare names.
func ConfigFromEnv() Config {
	cfg := Config{
		ClientID:     envFirst("HOMEY_CLIENT_ID", "CLIENT_ID"),
		ClientSecret: envFirst("HOMEY_CLIENT_SECRET", "CLIENT_SECRET"),
		APIURL:       os.Getenv("HOMEY_API_URL"),
	}
	cfg.normalize()
	return cfg
}

// Validate returns a configuration error when a required credential is
// missing. The API URL is never required since it has a default.
func (c *Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "HOMEY_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "HOMEY_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s must be set", ErrNotConfigured, strings.Join(missing, " and "))
	}
	return nil
}

// Merge fills empty fields from other. Used to layer the stored profile
// underneath environment variables.
func (c *Config) Merge(other Config) {
	if c.ClientID == "" {
		c.ClientID = other.ClientID
	}
	if c.ClientSecret == "" {
		c.ClientSecret = other.ClientSecret
	}
	if c.APIURL == "" || c.APIURL == DefaultAPIURL {
		if other.APIURL != "" {
			c.APIURL = other.APIURL
		}
	}
	c.normalize()
}

func (c *Config) normalize() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimSuffix(c.APIURL, "/")
}

func envFirst(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
