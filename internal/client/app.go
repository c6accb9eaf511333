package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gamegenius/internal/adapter"
	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/MKhiriev/gamegenius/internal/crypto"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/service"
	"github.com/MKhiriev/gamegenius/internal/store"
	"github.com/MKhiriev/gamegenius/internal/tui"
	"github.com/MKhiriev/gamegenius/internal/vault"
	"github.com/MKhiriev/gamegenius/models"
)

type App struct {
	store    store.KeyValueStore
	services *service.Services
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the configured store and assembles vault, adapter, services
// and terminal UI on top of it. The store is closed when construction fails.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create key/value store: %w", err)
	}

	app, err := newApp(cfg, kv, buildInfo, log)
	if err != nil {
		if closeErr := kv.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "client.NewApp").Msg("failed to close store")
		}
		return nil, err
	}

	return app, nil
}

func newApp(cfg *config.ClientConfig, kv store.KeyValueStore, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	deriver, err := crypto.NewKeyDeriver(cfg.Crypto)
	if err != nil {
		return nil, fmt.Errorf("create key deriver: %w", err)
	}
	secretVault := vault.New(crypto.NewSecretCipher(deriver), kv, log)

	generationAdapter, err := adapter.NewHTTPGenerationAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create generation adapter: %w", err)
	}

	services, err := service.NewServices(cfg, secretVault, kv, generationAdapter, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	ui, err := tui.New(services, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{store: kv, services: services, ui: ui, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled, then closes the store.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Str("func", "App.Run").Msg("client stopped by signal")
		return nil
	}
	return err
}

func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Close").Msg("failed to close store")
		return err
	}
	return nil
}
