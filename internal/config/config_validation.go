// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// MinPBKDF2Iterations is the lowest accepted PBKDF2 iteration count.
const MinPBKDF2Iterations = 100_000

// validate checks the merged [StructuredConfig]. Only the shape of values
// is checked here; missing secrets are reported by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.QuotaBytes < 0 {
		return fmt.Errorf("%w: negative quota %d", ErrInvalidStorageConfigs, cfg.Storage.QuotaBytes)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.Passphrase == "" {
		return fmt.Errorf("%w: passphrase is required", ErrInvalidAppConfigs)
	}
	if cfg.App.StorageKey == "" {
		return fmt.Errorf("%w: storage key is required", ErrInvalidAppConfigs)
	}

	switch cfg.Crypto.KDF {
	case "pbkdf2":
		if cfg.Crypto.Iterations < MinPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 iterations %d below %d",
				ErrInvalidCryptoConfigs, cfg.Crypto.Iterations, MinPBKDF2Iterations)
		}
	case "argon2id":
		if cfg.Crypto.ArgonTime == 0 || cfg.Crypto.ArgonMemory == 0 || cfg.Crypto.ArgonThreads == 0 {
			return fmt.Errorf("%w: argon2id parameters must be positive", ErrInvalidCryptoConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kdf %q", ErrInvalidCryptoConfigs, cfg.Crypto.KDF)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
