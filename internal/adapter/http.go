package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/utils"
	"github.com/MKhiriev/gamegenius/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	generateGamePath = "/api/v1/games"

	headerRequestID = "X-Request-ID"
	headerHash      = "HashSHA256"
)

type httpGenerationAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPGenerationAdapter constructs an HTTP/REST implementation of
// [GenerationAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. A non-empty appCfg.HashKey enables
// the HashSHA256 body signature header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPGenerationAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (GenerationAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpGenerationAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Generate implements [GenerationAdapter]. It POSTs req as JSON to
// /api/v1/games and decodes the {"title","rules","setup","scoring"} reply.
func (h *httpGenerationAdapter) Generate(ctx context.Context, apiKey string, req models.GameRequest) (models.GeneratedGame, error) {
	if err := validateRequest(req); err != nil {
		return models.GeneratedGame{}, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.GeneratedGame{}, fmt.Errorf("encode generation request: %w", err)
	}

	r, err := h.authedRequest(ctx, apiKey)
	if err != nil {
		return models.GeneratedGame{}, err
	}
	if h.hasher != nil {
		r.SetHeader(headerHash, h.hasher.Sign(body))
	}

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(generateGamePath)
	if err != nil {
		return models.GeneratedGame{}, h.requestError(ctx, "generate", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.log(ctx).Warn().Err(err).Str("func", "httpGenerationAdapter.Generate").
			Int("status", resp.StatusCode()).Str("request_id", r.Header.Get(headerRequestID)).
			Msg("generation api rejected request")
		return models.GeneratedGame{}, err
	}

	var game models.GeneratedGame
	if err = json.Unmarshal(resp.Body(), &game); err != nil {
		return models.GeneratedGame{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if game.Title == "" && game.Rules == "" {
		return models.GeneratedGame{}, fmt.Errorf("%w: empty game", ErrInvalidResponse)
	}

	return game, nil
}

// TestConnection implements [GenerationAdapter].
func (h *httpGenerationAdapter) TestConnection(ctx context.Context, apiKey, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ErrEmptyTestEndpoint
	}

	r, err := h.authedRequest(ctx, apiKey)
	if err != nil {
		return err
	}

	resp, err := r.Get(endpoint)
	if err != nil {
		return h.requestError(ctx, "test connection", err)
	}

	return mapHTTPError(resp)
}

// authedRequest starts a request carrying ctx, the bearer API key and the
// request id from ctx, generating one when ctx has none.
func (h *httpGenerationAdapter) authedRequest(ctx context.Context, apiKey string) (*resty.Request, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetHeader(headerRequestID, requestID), nil
}

func (h *httpGenerationAdapter) requestError(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%s request: %w", op, ErrRequestCanceled)
	}

	h.log(ctx).Err(err).Str("func", "httpGenerationAdapter.requestError").Str("op", op).Msg("request failed")
	return fmt.Errorf("%s request: %w", op, err)
}

// log prefers the request-scoped logger attached to ctx.
func (h *httpGenerationAdapter) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}

func validateRequest(req models.GameRequest) error {
	switch req.Mode {
	case models.ModeDescription:
		if strings.TrimSpace(req.Description) == "" {
			return fmt.Errorf("%w: empty description", ErrInvalidRequest)
		}
	case models.ModeSurvey:
		if req.Survey == nil {
			return fmt.Errorf("%w: missing survey answers", ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, req.Mode)
	}
	return nil
}
