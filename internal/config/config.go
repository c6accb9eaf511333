// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the vault passphrase, the storage key of the API key and the
	// request integrity key.
	App App `envPrefix:"APP_"`

	// Crypto selects and tunes the key derivation function.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds the key/value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the generation API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Passphrase is the secret the vault derives its encryption keys from.
	// It is read from configuration on every start and never persisted by
	// the vault.
	// Env: APP_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// StorageKey is the key/value store entry the encrypted API key lives
	// under.
	// Env: APP_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`

	// HashKey is the HMAC key used to sign generation request bodies
	// (HashSHA256 header). Signing is disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Crypto tunes the key derivation function used by the vault.
type Crypto struct {
	// KDF is either "pbkdf2" or "argon2id".
	// Env: CRYPTO_KDF
	KDF string `env:"KDF"`

	// Iterations is the PBKDF2-HMAC-SHA256 iteration count.
	// Env: CRYPTO_PBKDF2_ITERATIONS
	Iterations int `env:"PBKDF2_ITERATIONS"`

	// ArgonTime is the Argon2id time cost.
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemory is the Argon2id memory cost in KiB.
	// Env: CRYPTO_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`

	// ArgonThreads is the Argon2id parallelism.
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Storage groups key/value store settings.
type Storage struct {
	// DB holds the DSN that selects and configures the backend.
	DB DB `envPrefix:"DB_"`

	// QuotaBytes caps the total size of the memory and file backends.
	// Zero disables the cap.
	// Env: STORAGE_QUOTA_BYTES
	QuotaBytes int64 `env:"QUOTA_BYTES"`

	// KeyPrefix namespaces entries in shared backends such as Redis.
	// Env: STORAGE_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// DB holds the backend DSN.
type DB struct {
	// DSN selects the backend:
	//   - "memory" or ":memory:"          in-process map
	//   - "file://<path>" or "<path>.json" JSON file
	//   - "redis://..."                   Redis
	//   - "postgres://..."                PostgreSQL
	//   - anything else                   SQLite database file
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds generation API settings.
type Adapter struct {
	// HTTPAddress is the base URL of the generation API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TestEndpoint is the default endpoint probed by the connection test.
	// Env: ADAPTER_TEST_ENDPOINT
	TestEndpoint string `env:"TEST_ENDPOINT"`
}

// Log holds logger settings.
type Log struct {
	// FilePath is the file client logs are appended to.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
