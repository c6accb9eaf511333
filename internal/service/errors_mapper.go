// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/gamegenius/internal/adapter"
	"github.com/MKhiriev/gamegenius/internal/store"
	"github.com/MKhiriev/gamegenius/internal/vault"
)

// UserMessage translates err into a short actionable text for the user. It
// never includes secrets or raw server responses. A nil err yields "".
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrAPIKeyNotConfigured):
		return "No API key is configured. Open the API configuration and save your key."
	case errors.Is(err, ErrAPIKeyUnreadable):
		return "The stored API key could not be read. Please re-enter your API key."
	case errors.Is(err, ErrEmptyAPIKey):
		return "Please enter an API key."
	case errors.Is(err, ErrEmptyDescription):
		return "Please describe your game idea first."
	case errors.Is(err, ErrInvalidConfiguration):
		return "The saved API configuration is damaged. Please save it again."

	case errors.Is(err, adapter.ErrRequestCanceled):
		return "Generation was cancelled."
	case errors.Is(err, adapter.ErrMissingAPIKey):
		return "Please enter an API key."
	case errors.Is(err, adapter.ErrEmptyTestEndpoint):
		return "Please enter a test endpoint."
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return "The API rejected your key. Check the key in the API configuration."
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "The API rate limit was reached. Wait a moment and try again."
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrInvalidRequest):
		return "The API did not accept the request. Adjust your input and try again."
	case errors.Is(err, adapter.ErrNotFound):
		return "The API endpoint was not found. Check the API address."
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrInvalidResponse):
		return "The generation service is having trouble. Try again later."

	case errors.Is(err, store.ErrQuotaExceeded):
		return "Local storage is full. Free some space and try again."
	case errors.Is(err, store.ErrStoreUnavailable):
		return "Local storage is unavailable. Close other instances and try again."
	case errors.Is(err, vault.ErrStorage):
		return "Local storage failed. Try again."
	case errors.Is(err, vault.ErrCrypto):
		return "Encryption is unavailable. Check the vault passphrase configuration."
	}

	return "Something went wrong. Try again."
}
