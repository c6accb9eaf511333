package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// Passphrase is handed to the vault on every call; it is never stored.
	Passphrase string
	// StorageKey is the fixed entry name of the API key.
	StorageKey string
	// HashKey signs request bodies when non-empty.
	HashKey string
}

// ClientCrypto holds key derivation settings.
type ClientCrypto struct {
	KDF          string
	Iterations   int
	ArgonTime    uint32
	ArgonMemory  uint32
	ArgonThreads uint8
}

// ClientDB contains the key/value store DSN.
type ClientDB struct {
	// DSN selects and configures the backend, see [DB].
	DSN string
}

// ClientStorage groups key/value store settings.
type ClientStorage struct {
	DB         ClientDB
	QuotaBytes int64
	KeyPrefix  string
}

// ClientAdapter holds generation API settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	TestEndpoint   string
}

// ClientLog holds logger settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Crypto  ClientCrypto
	Storage ClientStorage
	Adapter ClientAdapter
	Log     ClientLog
}

// GetClientConfig builds and validates the client view of the merged
// configuration. args are the command-line arguments without the program
// name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Passphrase: cfg.App.Passphrase,
			StorageKey: cfg.App.StorageKey,
			HashKey:    cfg.App.HashKey,
		},
		Crypto: ClientCrypto{
			KDF:          cfg.Crypto.KDF,
			Iterations:   cfg.Crypto.Iterations,
			ArgonTime:    cfg.Crypto.ArgonTime,
			ArgonMemory:  cfg.Crypto.ArgonMemory,
			ArgonThreads: cfg.Crypto.ArgonThreads,
		},
		Storage: ClientStorage{
			DB:         ClientDB{DSN: cfg.Storage.DB.DSN},
			QuotaBytes: cfg.Storage.QuotaBytes,
			KeyPrefix:  cfg.Storage.KeyPrefix,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			TestEndpoint:   cfg.Adapter.TestEndpoint,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
}
