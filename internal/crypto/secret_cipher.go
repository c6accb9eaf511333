// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Record layout sizes in bytes.
const (
	SaltSize  = 16
	NonceSize = 12
	TagSize   = 16
	KeySize   = 32 // AES-256

	minRecordSize = SaltSize + NonceSize + TagSize
)

// secretCipher is the private implementation of [SecretCipher].
type secretCipher struct {
	deriver KeyDeriver
	random  io.Reader
}

// NewSecretCipher constructs a [SecretCipher] deriving keys with deriver and
// drawing salts and nonces from the OS CSPRNG.
func NewSecretCipher(deriver KeyDeriver) SecretCipher {
	return &secretCipher{deriver: deriver, random: rand.Reader}
}

// DeriveKey implements [SecretCipher].
func (c *secretCipher) DeriveKey(passphrase string, salt []byte) (Key, error) {
	if passphrase == "" {
		return Key{}, fmt.Errorf("%w: %w", ErrCrypto, errEmptyPassphrase)
	}
	if len(salt) != SaltSize {
		return Key{}, fmt.Errorf("%w: %w: %d", ErrCrypto, errBadSalt, len(salt))
	}
	if c.deriver == nil {
		return Key{}, fmt.Errorf("%w: no key deriver configured", ErrCrypto)
	}

	return Key{material: c.deriver.Derive([]byte(passphrase), salt)}, nil
}

// Encrypt implements [SecretCipher]. The passphrase is checked before any
// randomness is consumed.
func (c *secretCipher) Encrypt(plaintext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", fmt.Errorf("%w: %w", ErrCrypto, errEmptyPassphrase)
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return "", fmt.Errorf("%w: generate salt: %w", ErrCrypto, err)
	}

	key, err := c.DeriveKey(passphrase, salt)
	if err != nil {
		return "", err
	}
	defer key.destroy()

	gcm, err := key.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrCrypto, err)
	}

	blob := make([]byte, 0, minRecordSize+len(plaintext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [SecretCipher].
func (c *secretCipher) Decrypt(record, passphrase string) (string, error) {
	blob, err := decodeRecord(record)
	if err != nil {
		return "", err
	}
	if len(blob) < minRecordSize {
		return "", fmt.Errorf("%w: %w: %d bytes", ErrDecode, errRecordTooShort, len(blob))
	}

	salt := blob[:SaltSize]
	nonce := blob[SaltSize : SaltSize+NonceSize]
	sealed := blob[SaltSize+NonceSize:]

	key, err := c.DeriveKey(passphrase, salt)
	if err != nil {
		return "", err
	}
	defer key.destroy()

	gcm, err := key.aead()
	if err != nil {
		return "", err
	}

	// An error here almost always means a wrong passphrase.
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return string(plaintext), nil
}

// decodeRecord accepts only the canonical encoding Encrypt produces, so every
// character of a record is covered by the GCM tag. Line breaks and non-zero
// padding bits are rejected.
func decodeRecord(record string) ([]byte, error) {
	if strings.ContainsAny(record, "\r\n") {
		return nil, fmt.Errorf("%w: %w", ErrDecode, errNonCanonicalRecord)
	}

	blob, err := base64.StdEncoding.Strict().DecodeString(record)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecode, err)
	}

	return blob, nil
}
