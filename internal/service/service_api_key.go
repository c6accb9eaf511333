package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/store"
	"github.com/MKhiriev/gamegenius/internal/vault"
	"github.com/MKhiriev/gamegenius/models"
)

// ConfigurationStorageKey is the entry holding the non-secret part of the
// API configuration panel.
const ConfigurationStorageKey = "apiConfig"

type apiKeyService struct {
	vault      vault.SecretVault
	kv         store.KeyValueStore
	storageKey string
	passphrase string

	defaultTestEndpoint string

	logger *logger.Logger
}

// NewAPIKeyService binds v to the storage key and passphrase of appCfg. kv
// holds the plain configuration entry and is usually the store behind v.
func NewAPIKeyService(v vault.SecretVault, kv store.KeyValueStore, appCfg config.ClientApp, adapterCfg config.ClientAdapter, logger *logger.Logger) (APIKeyService, error) {
	if appCfg.Passphrase == "" {
		return nil, ErrPassphraseNotSet
	}
	if appCfg.StorageKey == "" {
		return nil, ErrStorageKeyNotSet
	}

	return &apiKeyService{
		vault:               v,
		kv:                  kv,
		storageKey:          appCfg.StorageKey,
		passphrase:          appCfg.Passphrase,
		defaultTestEndpoint: adapterCfg.TestEndpoint,
		logger:              logger,
	}, nil
}

func (s *apiKeyService) SaveSecret(ctx context.Context, plaintext string) error {
	if strings.TrimSpace(plaintext) == "" {
		return ErrEmptyAPIKey
	}

	if err := s.vault.Save(ctx, s.storageKey, plaintext, s.passphrase); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}

	s.logger.Info().Str("func", "apiKeyService.SaveSecret").Msg("api key saved")
	return nil
}

func (s *apiKeyService) LoadSecret(ctx context.Context) (string, bool, error) {
	plaintext, found, err := s.vault.Load(ctx, s.storageKey, s.passphrase)
	if err != nil {
		if errors.Is(err, vault.ErrAuthentication) || errors.Is(err, vault.ErrDecode) {
			return "", false, fmt.Errorf("%w: %w", ErrAPIKeyUnreadable, err)
		}
		return "", false, fmt.Errorf("load api key: %w", err)
	}

	return plaintext, found, nil
}

func (s *apiKeyService) ClearSecret(ctx context.Context) error {
	if err := s.vault.Clear(ctx, s.storageKey); err != nil {
		return fmt.Errorf("clear api key: %w", err)
	}

	s.logger.Info().Str("func", "apiKeyService.ClearSecret").Msg("api key cleared")
	return nil
}

func (s *apiKeyService) SaveConfiguration(ctx context.Context, cfg models.APIConfiguration) error {
	if cfg.APIKey != "" {
		if err := s.SaveSecret(ctx, cfg.APIKey); err != nil {
			return err
		}
	}

	cfg.DocumentationURL = strings.TrimSpace(cfg.DocumentationURL)
	cfg.TestEndpoint = strings.TrimSpace(cfg.TestEndpoint)

	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode api configuration: %w", err)
	}

	if err = s.kv.Set(ctx, ConfigurationStorageKey, string(payload)); err != nil {
		s.logger.Err(err).Str("func", "apiKeyService.SaveConfiguration").Msg("failed to store api configuration")
		return fmt.Errorf("save api configuration: %w", err)
	}

	return nil
}

func (s *apiKeyService) LoadConfiguration(ctx context.Context) (models.APIConfiguration, error) {
	cfg := models.APIConfiguration{TestEndpoint: s.defaultTestEndpoint}

	raw, found, err := s.kv.Get(ctx, ConfigurationStorageKey)
	if err != nil {
		return cfg, fmt.Errorf("load api configuration: %w", err)
	}
	if found {
		if err = json.Unmarshal([]byte(raw), &cfg); err != nil {
			s.logger.Warn().Err(err).Str("func", "apiKeyService.LoadConfiguration").Msg("stored api configuration is corrupt")
			return models.APIConfiguration{TestEndpoint: s.defaultTestEndpoint}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		if cfg.TestEndpoint == "" {
			cfg.TestEndpoint = s.defaultTestEndpoint
		}
	}

	apiKey, _, err := s.LoadSecret(ctx)
	if err != nil {
		return cfg, err
	}
	cfg.APIKey = apiKey

	return cfg, nil
}
