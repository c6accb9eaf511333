// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote game
// generation API.
//
// The primary abstraction is [GenerationAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPGenerationAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for
// 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/gamegenius/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GenerationAdapter defines communication with the game generation API.
// Implementations are responsible for serialisation, authentication header
// management and mapping transport-level errors to the sentinel values
// defined in this package. They never retry.
type GenerationAdapter interface {
	// Generate sends req to the generation API authenticated with apiKey and
	// returns the generated game. Cancelling ctx aborts the request and
	// yields [ErrRequestCanceled].
	Generate(ctx context.Context, apiKey string, req models.GameRequest) (models.GeneratedGame, error)

	// TestConnection performs an authenticated GET on endpoint, a path
	// relative to the API base URL or an absolute URL, and reports whether
	// the API accepted it.
	TestConnection(ctx context.Context, apiKey, endpoint string) error
}
