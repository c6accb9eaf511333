package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-p/-passphrase   vault passphrase
//	-k/-storage-key  storage key of the API key entry
//	-hash-key        request signing key
//	-kdf             key derivation function (pbkdf2, argon2id)
//	-iterations      PBKDF2 iteration count
//	-d               storage DSN
//	-quota           storage quota in bytes
//	-a               generation API address
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-test-endpoint   connection test endpoint
//	-log-file        log file path
//	-log-level       log level
//	-c/-config       json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		passphrase     string
		storageKey     string
		hashKey        string
		kdf            string
		iterations     int
		dsn            string
		quota          int64
		address        string
		requestTimeout time.Duration
		testEndpoint   string
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("gamegenius", flag.ContinueOnError)
	fs.StringVar(&passphrase, "p", "", "Vault passphrase")
	fs.StringVar(&passphrase, "passphrase", "", "Vault passphrase (alias)")
	fs.StringVar(&storageKey, "k", "", "Storage key of the API key entry")
	fs.StringVar(&storageKey, "storage-key", "", "Storage key of the API key entry (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.StringVar(&kdf, "kdf", "", "Key derivation function (pbkdf2, argon2id)")
	fs.IntVar(&iterations, "iterations", 0, "PBKDF2 iteration count")
	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.Int64Var(&quota, "quota", 0, "Storage quota in bytes")
	fs.StringVar(&address, "a", "", "Generation API address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&testEndpoint, "test-endpoint", "", "Connection test endpoint")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Passphrase: passphrase,
			StorageKey: storageKey,
			HashKey:    hashKey,
		},
		Crypto: Crypto{
			KDF:        kdf,
			Iterations: iterations,
		},
		Storage: Storage{
			DB:         DB{DSN: dsn},
			QuotaBytes: quota,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			TestEndpoint:   testEndpoint,
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
