// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault combines a [crypto.SecretCipher] and a [store.KeyValueStore]
// into the secret vault: secrets are encrypted with a caller-supplied
// passphrase before they reach the store and decrypted after they leave it.
//
// The vault holds no passphrase and no key material between calls. It does
// not retry and does not serialise callers: concurrent Saves to one key are
// last-write-wins at the store.
package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gamegenius/internal/crypto"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/store"
)

type vault struct {
	cipher crypto.SecretCipher
	store  store.KeyValueStore
	logger *logger.Logger
}

// New returns a [SecretVault] encrypting with cipher and persisting to kv.
func New(cipher crypto.SecretCipher, kv store.KeyValueStore, log *logger.Logger) SecretVault {
	return &vault{cipher: cipher, store: kv, logger: log}
}

func (v *vault) Save(ctx context.Context, storageKey, plaintext, passphrase string) error {
	if storageKey == "" {
		return ErrEmptyStorageKey
	}

	record, err := v.cipher.Encrypt(plaintext, passphrase)
	if err != nil {
		v.logger.Err(err).Str("func", "vault.Save").Str("storage_key", storageKey).Msg("failed to encrypt secret")
		return fmt.Errorf("encrypt secret: %w", err)
	}

	if err = v.store.Set(ctx, storageKey, record); err != nil {
		v.logger.Err(err).Str("func", "vault.Save").Str("storage_key", storageKey).Msg("failed to write record")
		return wrapStorage("write record", err)
	}

	v.logger.Debug().Str("func", "vault.Save").Str("storage_key", storageKey).Msg("secret saved")
	return nil
}

func (v *vault) Load(ctx context.Context, storageKey, passphrase string) (string, bool, error) {
	if storageKey == "" {
		return "", false, ErrEmptyStorageKey
	}

	record, found, err := v.store.Get(ctx, storageKey)
	if err != nil {
		v.logger.Err(err).Str("func", "vault.Load").Str("storage_key", storageKey).Msg("failed to read record")
		return "", false, wrapStorage("read record", err)
	}
	if !found {
		return "", false, nil
	}

	plaintext, err := v.cipher.Decrypt(record, passphrase)
	if err != nil {
		v.logger.Warn().Err(err).Str("func", "vault.Load").Str("storage_key", storageKey).Msg("failed to decrypt record")
		return "", false, fmt.Errorf("decrypt secret: %w", err)
	}

	return plaintext, true, nil
}

func (v *vault) Clear(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return ErrEmptyStorageKey
	}

	if err := v.store.Remove(ctx, storageKey); err != nil {
		v.logger.Err(err).Str("func", "vault.Clear").Str("storage_key", storageKey).Msg("failed to remove record")
		return wrapStorage("remove record", err)
	}

	return nil
}

// wrapStorage makes every store failure match [ErrStorage], including
// errors from stores that do not wrap it themselves.
func wrapStorage(op string, err error) error {
	if errors.Is(err, ErrStorage) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
