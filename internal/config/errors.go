package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing passphrase or storage key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates an unknown KDF or parameters below
	// the accepted minimum.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or negative quota).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid generation API settings
	// (for example, missing address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)

// ErrInvalidEnv wraps environment variables that could not be parsed into
// their configuration fields.
var ErrInvalidEnv = errors.New("invalid environment variable")
