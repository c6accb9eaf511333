package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/gamegenius/internal/adapter"
	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/models"
)

type gameService struct {
	keys    APIKeyService
	adapter adapter.GenerationAdapter

	testEndpoint string

	logger *logger.Logger
}

func NewGameService(keys APIKeyService, generationAdapter adapter.GenerationAdapter, adapterCfg config.ClientAdapter, logger *logger.Logger) GameService {
	return &gameService{
		keys:         keys,
		adapter:      generationAdapter,
		testEndpoint: adapterCfg.TestEndpoint,
		logger:       logger,
	}
}

func (g *gameService) Generate(ctx context.Context, req models.GameRequest) (models.GeneratedGame, error) {
	switch req.Mode {
	case models.ModeDescription:
		req.Description = strings.TrimSpace(req.Description)
		if req.Description == "" {
			return models.GeneratedGame{}, ErrEmptyDescription
		}
		req.Survey = nil
	case models.ModeSurvey:
		if req.Survey == nil {
			survey := models.DefaultSurvey()
			req.Survey = &survey
		}
		req.Description = ""
	default:
		return models.GeneratedGame{}, fmt.Errorf("%w: %q", ErrUnknownInputMode, req.Mode)
	}

	apiKey, err := g.requireAPIKey(ctx)
	if err != nil {
		return models.GeneratedGame{}, err
	}

	game, err := g.adapter.Generate(ctx, apiKey, req)
	if err != nil {
		g.logger.Err(err).Str("func", "gameService.Generate").Str("mode", string(req.Mode)).Msg("game generation failed")
		return models.GeneratedGame{}, fmt.Errorf("generate game: %w", err)
	}

	return game, nil
}

func (g *gameService) TestConnection(ctx context.Context, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = g.testEndpoint
	}

	apiKey, err := g.requireAPIKey(ctx)
	if err != nil {
		return err
	}

	if err = g.adapter.TestConnection(ctx, apiKey, endpoint); err != nil {
		return fmt.Errorf("test connection: %w", err)
	}

	return nil
}

// requireAPIKey turns an absent key into [ErrAPIKeyNotConfigured].
func (g *gameService) requireAPIKey(ctx context.Context) (string, error) {
	apiKey, found, err := g.keys.LoadSecret(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrAPIKeyNotConfigured
	}
	return apiKey, nil
}

// Export renders game as a Markdown document with one section per part.
func (g *gameService) Export(game models.GeneratedGame) string {
	var b strings.Builder

	title := strings.TrimSpace(game.Title)
	if title == "" {
		title = "Untitled game"
	}
	fmt.Fprintf(&b, "# %s\n", title)

	for _, section := range []struct{ name, body string }{
		{"Setup", game.Setup},
		{"Rules", game.Rules},
		{"Scoring", game.Scoring},
	} {
		body := strings.TrimSpace(section.body)
		if body == "" {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", section.name, body)
	}

	return b.String()
}
