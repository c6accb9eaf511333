package service

import "errors"

var (
	// ErrAPIKeyNotConfigured is returned when an operation needs the API key
	// and none is stored.
	ErrAPIKeyNotConfigured = errors.New("api key is not configured")

	// ErrAPIKeyUnreadable is returned when the stored API key exists but
	// cannot be decrypted with the configured passphrase, or is corrupt. The
	// user has to enter the key again.
	ErrAPIKeyUnreadable = errors.New("stored api key cannot be read")

	ErrEmptyAPIKey          = errors.New("api key is empty")
	ErrEmptyDescription     = errors.New("game description is empty")
	ErrUnknownInputMode     = errors.New("unknown input mode")
	ErrPassphraseNotSet     = errors.New("vault passphrase is not configured")
	ErrStorageKeyNotSet     = errors.New("vault storage key is not configured")
	ErrInvalidConfiguration = errors.New("stored api configuration is invalid")
)
