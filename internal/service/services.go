package service

import (
	"github.com/MKhiriev/gamegenius/internal/adapter"
	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/store"
	"github.com/MKhiriev/gamegenius/internal/vault"
	"github.com/MKhiriev/gamegenius/models"
)

type Services struct {
	APIKeyService APIKeyService
	GameService   GameService
	AppInfo       AppInfoService
}

func NewServices(cfg *config.ClientConfig, v vault.SecretVault, kv store.KeyValueStore, generationAdapter adapter.GenerationAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	keys, err := NewAPIKeyService(v, kv, cfg.App, cfg.Adapter, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		APIKeyService: keys,
		GameService:   NewGameService(keys, generationAdapter, cfg.Adapter, logger),
		AppInfo:       NewAppInfoService(buildInfo, logger),
	}, nil
}
