package db

import (
	"context"
	"fmt"

	"github.com/homectl/homeyctl/pkg/homey"
)

// Bootstrap initializes the database with a default profile on first run.
// Credentials already present in the environment are captured into the
// profile so they survive across shells.
func (db *DB) Bootstrap(ctx context.Context) error {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}

	if count > 0 {
		return nil // Already bootstrapped
	}

	env := homey.ConfigFromEnv()
	apiURL := env.APIURL
	if apiURL == homey.DefaultAPIURL {
		apiURL = "" // Empty means "use the default", keeps the default changeable
	}

	profile := &Profile{
		Name:         "default",
		IsActive:     true,
		ClientID:     env.ClientID,
		ClientSecret: env.ClientSecret,
		APIURL:       apiURL,
	}
	if err := db.Profiles().Create(ctx, profile); err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}

	return nil
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
