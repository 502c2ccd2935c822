package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/homectl/homeyctl/pkg/db"
	"github.com/homectl/homeyctl/pkg/homey"
	homeymcp "github.com/homectl/homeyctl/pkg/mcp"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/homeyctl/homeyctl.db)")
	fixtures := flag.Bool("fixtures", false, "Serve built-in fixture devices instead of the Homey API")
	strict := flag.Bool("strict", false, "Exit at startup when Homey credentials are missing instead of failing per call")
	flag.Parse()

	ctx := context.Background()

	var client homey.Client

	if *fixtures {
		devices, flows := homey.DefaultFixtures()
		client = homey.NewFixtureClient(devices, flows)
		log.Info().Int("devices", len(devices)).Int("flows", len(flows)).Msg("Using fixture client")
	} else {
		// Open database
		database, err := db.Open(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open database")
		}
		defer func() {
			if err := database.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}()

		log.Info().Str("path", database.Path()).Msg("Database opened")

		// Run migrations
		if err := database.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}

		// Bootstrap if needed (first run)
		needsBootstrap, err := database.NeedsBootstrap(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to check bootstrap status")
		}
		if needsBootstrap {
			log.Info().Msg("First run detected, bootstrapping database...")
			if err := database.Bootstrap(ctx); err != nil {
				log.Fatal().Err(err).Msg("Failed to bootstrap database")
			}
		}

		// Environment first, active profile fills the gaps
		cfg, profile, err := db.LoadConfig(ctx, database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if profile != nil {
			log.Info().Str("profile", profile.Name).Msg("Active profile loaded")
		}

		if err := cfg.Validate(); err != nil {
			if *strict {
				log.Fatal().Err(err).Msg("Homey credentials missing")
			}
			log.Warn().Err(err).Msg("Homey credentials missing; tool calls will fail until configured")
		}

		client = homey.NewHTTPClient(cfg)
		log.Info().Str("api_url", cfg.APIURL).Msg("Using Homey HTTP client")
	}

	// Create and start MCP server
	mcpServer := homeymcp.NewServer(client)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
