package adapter

import "errors"

// HTTP status sentinels returned by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Client-side failures.
var (
	// ErrMissingAPIKey is returned before any request is sent when apiKey is
	// empty.
	ErrMissingAPIKey = errors.New("api key is missing")

	// ErrEmptyTestEndpoint is returned by TestConnection for an empty
	// endpoint.
	ErrEmptyTestEndpoint = errors.New("test endpoint is empty")

	// ErrRequestCanceled is returned when the caller cancels the request.
	ErrRequestCanceled = errors.New("request canceled")

	// ErrInvalidRequest is returned for a request with an unknown mode or
	// without content for its mode.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrInvalidResponse is returned when a 2xx response cannot be decoded
	// into a game.
	ErrInvalidResponse = errors.New("invalid generation response")
)
