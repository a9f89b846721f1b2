// Command polydiff creates and validates spot-the-difference games.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/config/file"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/imagefile"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/render"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/storage/memory"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/storage/postgres"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/storage/sqlite"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driving/cli"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/services"
	"github.com/sucyhan/polydiff-2023-sub000/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires configuration, storage and services.
func bootstrap(ctx context.Context, configDir string) (*cli.Services, func() error, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	gameStore, closeStore, err := openGameStore(ctx, settings.Storage, configDir)
	if err != nil {
		return nil, nil, err
	}

	diffService := services.NewDiffService()
	return &cli.Services{
		Diff:     diffService,
		Game:     services.NewGameService(gameStore, diffService, settingsService),
		Settings: settingsService,
		Images:   imagefile.NewLoader(),
		Preview:  render.NewRenderer(),
	}, closeStore, nil
}

// openGameStore opens the backend selected by the storage settings.
func openGameStore(
	ctx context.Context,
	cfg domain.StorageSettings,
	configDir string,
) (driven.GameStore, func() error, error) {
	logger.Debug("Storage driver: %s", cfg.Driver)

	switch cfg.Driver {
	case domain.StorageDriverPostgres:
		store, err := postgres.NewStore(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return store.GameStore(), store.Close, nil

	case domain.StorageDriverMemory:
		logger.Warn("Using in-memory storage; games are lost on exit")
		return memory.NewGameStore(), func() error { return nil }, nil

	default:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = filepath.Join(configDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		logger.Debug("Database: %s", store.Path())
		return store.GameStore(), store.Close, nil
	}
}
