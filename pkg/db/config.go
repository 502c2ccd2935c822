package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/homectl/homeyctl/pkg/homey"
)

// LoadConfig builds the runtime Homey configuration: environment variables
// first, with the active profile filling any gaps. Returns the config plus
// the active profile (nil when none exists).
func LoadConfig(ctx context.Context, database *DB) (homey.Config, *Profile, error) {
	cfg := homey.ConfigFromEnv()

	profile, err := database.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return cfg, nil, nil
		}
		return cfg, nil, fmt.Errorf("failed to load active profile: %w", err)
	}

	cfg.Merge(homey.Config{
		ClientID:     profile.ClientID,
		ClientSecret: profile.ClientSecret,
		APIURL:       profile.APIURL,
	})

	return cfg, profile, nil
}
