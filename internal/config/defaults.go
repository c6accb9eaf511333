package config

import "time"

// Built-in defaults, applied before any other source.
const (
	DefaultStorageKey       = "apiKey"
	DefaultKDF              = "pbkdf2"
	DefaultPBKDF2Iterations = 310_000
	DefaultArgonTime        = 1
	DefaultArgonMemory      = 64 * 1024
	DefaultArgonThreads     = 4
	DefaultDSN              = "gamegenius.db"
	DefaultKeyPrefix        = "gamegenius:"
	DefaultAdapterAddress   = "http://localhost:8080"
	DefaultRequestTimeout   = 60 * time.Second
	DefaultTestEndpoint     = "/api/v1/test"
	DefaultLogFile          = "gamegenius.log"
	DefaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{StorageKey: DefaultStorageKey},
		Crypto: Crypto{
			KDF:          DefaultKDF,
			Iterations:   DefaultPBKDF2Iterations,
			ArgonTime:    DefaultArgonTime,
			ArgonMemory:  DefaultArgonMemory,
			ArgonThreads: DefaultArgonThreads,
		},
		Storage: Storage{
			DB:        DB{DSN: DefaultDSN},
			KeyPrefix: DefaultKeyPrefix,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
			TestEndpoint:   DefaultTestEndpoint,
		},
		Log: Log{FilePath: DefaultLogFile, Level: DefaultLogLevel},
	}
}
