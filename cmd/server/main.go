package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/bitty/internal/api"
	"github.com/skybi/bitty/internal/apikey"
	"github.com/skybi/bitty/internal/bitflag"
	"github.com/skybi/bitty/internal/config"
	"github.com/skybi/bitty/internal/kinds"
	"github.com/skybi/bitty/internal/storage"
	"github.com/skybi/bitty/internal/storage/cache"
	"github.com/skybi/bitty/internal/storage/inmem"
	"github.com/skybi/bitty/internal/storage/postgres"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Register the flag enumeration kinds
	registry := bitflag.NewRegistry()
	if err := kinds.RegisterAll(registry); err != nil {
		log.Fatal().Err(err).Msg("could not register the flag enumeration kinds")
	}
	for _, kind := range registry.Kinds() {
		log.Debug().Str("kind", kind.Name).Int("variants", len(kind.Variants)).Msg("registered flag enumeration kind")
	}

	// Load the API keys
	keyring, err := apikey.LoadKeyring(cfg.APIKeys)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the API keys")
	}
	if keyring.Size() == 0 {
		if cfg.IsEnvProduction() {
			log.Warn().Msg("no API keys are configured; every request will be rejected")
		} else {
			key, token := keyring.Generate(bitflag.MustNew[apikey.Capability]().SetAll())
			log.Info().Str("id", key.ID).Str("token", token).Msg("generated a development API key with every capability")
		}
	}
	log.Info().Strs("keys", keyring.IDs()).Msg("loaded API keys")

	// Initialize the storage driver
	log.Info().Str("driver", cfg.StorageDriver).Msg("initializing storage driver...")
	var underlying storage.Driver
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		underlying = postgres.New(cfg.PostgresDSN)
	case config.StorageDriverInmem:
		underlying = inmem.New()
	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown storage driver")
	}
	driver := cache.New(underlying, cfg.CacheLifetime)
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the storage driver")
	}
	defer func() {
		log.Info().Msg("closing the storage driver...")
		driver.Close()
	}()

	// Start up the data API
	log.Info().Str("address", cfg.APIListenAddress).Msg("starting up the data API...")
	apis := &api.Service{
		Config:   cfg,
		Storage:  driver,
		Registry: registry,
		Keyring:  keyring,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the API service raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the data API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
