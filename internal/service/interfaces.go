package service

import (
	"context"

	"github.com/MKhiriev/gamegenius/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// APIKeyService is the caller-facing surface of the secret vault. It is bound
// at construction to the fixed storage key and to the configured passphrase,
// so callers never handle either.
type APIKeyService interface {
	// SaveSecret encrypts plaintext and stores it under the API key entry,
	// replacing any previous key.
	SaveSecret(ctx context.Context, plaintext string) error

	// LoadSecret returns the stored API key. found is false, with a nil
	// error, when no key has been saved.
	LoadSecret(ctx context.Context) (plaintext string, found bool, err error)

	// ClearSecret removes the stored API key. It succeeds when none is stored.
	ClearSecret(ctx context.Context) error

	// SaveConfiguration persists the API configuration panel. A non-empty
	// cfg.APIKey goes through the vault; the other fields are stored as
	// plain JSON.
	SaveConfiguration(ctx context.Context, cfg models.APIConfiguration) error

	// LoadConfiguration returns the stored panel content. When the API key
	// cannot be read the non-secret fields are still returned together with
	// the error.
	LoadConfiguration(ctx context.Context) (models.APIConfiguration, error)
}

// GameService generates games through the remote generation API.
type GameService interface {
	// Generate loads the API key and asks the generation API for a game.
	// Cancelling ctx aborts the request.
	Generate(ctx context.Context, req models.GameRequest) (models.GeneratedGame, error)

	// TestConnection checks the stored API key against endpoint, or against
	// the configured test endpoint when endpoint is empty.
	TestConnection(ctx context.Context, endpoint string) error

	// Export renders game as Markdown.
	Export(game models.GeneratedGame) string
}

// AppInfoService exposes build metadata to the user interface.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
