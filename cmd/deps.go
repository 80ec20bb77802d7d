package cmd

import (
	"benchboss/api"
	"benchboss/internal/config"
	"benchboss/internal/ingest"
	"benchboss/internal/logger"
	"benchboss/internal/registry"
	"fmt"

	"github.com/joho/godotenv"
)

// InitializePool loads the weekly export and indexes it. Every entrypoint
// goes through here so they all share the same ingestion path.
func InitializePool(dataFile string) (registry.PlayerRegistry, error) {
	players, err := ingest.LoadPlayers(dataFile)
	if err != nil {
		return nil, err
	}

	playerRegistry, err := registry.NewPlayerRegistry(players)
	if err != nil {
		return nil, fmt.Errorf("failed to build player registry: %w", err)
	}

	return playerRegistry, nil
}

// InitializeDependencies loads the player pool and wires every handler the
// entrypoints need. The pool is read once at startup and is read-only
// afterwards.
func InitializeDependencies() (*api.ApiHandler, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()

	playerRegistry, err := InitializePool(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	log.Infow("loaded player pool",
		"players", playerRegistry.Len(),
		"source", cfg.DataFile,
	)

	return &api.ApiHandler{
		PlayerRegistry: playerRegistry,
		Logger:         log,
		Config:         cfg,
	}, nil
}
