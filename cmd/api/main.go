package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/homectl/homeyctl/pkg/api"
	"github.com/homectl/homeyctl/pkg/db"
	"github.com/homectl/homeyctl/pkg/homey"
	"github.com/homectl/homeyctl/pkg/homey/schema"

	_ "github.com/homectl/homeyctl/docs"
)

// @title           homeyctl API
// @version         1.0
// @description     REST gateway for the Homey smart-home platform

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/homeyctl/homeyctl.db)")
	listen := flag.String("listen", "", "Listen address (overrides the active profile)")
	fixtures := flag.Bool("fixtures", false, "Serve built-in fixture devices instead of the Homey API")
	flag.Parse()

	ctx := context.Background()

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

	// Load configuration: environment first, active profile fills the gaps
	cfg, profile, err := db.LoadConfig(ctx, database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	addr := "0.0.0.0:8080"
	if profile != nil {
		addr = profile.GatewayAddress()
	}
	if *listen != "" {
		addr = *listen
	}

	var client homey.Client
	if *fixtures {
		devices, flows := homey.DefaultFixtures()
		client = homey.NewFixtureClient(devices, flows)
		log.Info().Int("devices", len(devices)).Int("flows", len(flows)).Msg("Using fixture client")
	} else {
		// A gateway with no upstream is useless: fail fast here, unlike the
		// MCP server which can report the error per call
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Homey credentials missing")
		}
		client = homey.NewHTTPClient(cfg)
		log.Info().Str("api_url", cfg.APIURL).Msg("Using Homey HTTP client")
	}

	validator := schema.NewValidator()

	// Create the API router
	router := api.NewRouter(client, validator)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
