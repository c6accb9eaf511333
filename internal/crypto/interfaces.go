// Package crypto implements the passphrase-based authenticated encryption
// used by the secret vault.
//
// A ciphertext record is the standard base64 encoding of
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-256-GCM ciphertext ‖ tag (16 bytes)
//
// The salt is random per record and feeds the configured [KeyDeriver]; the
// nonce is random per record. KDF parameters are part of the cipher
// configuration, not of the record, so every byte of a record is covered by
// the GCM authentication tag.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_cipher_mock.go -package=mock

// SecretCipher encrypts and decrypts secret strings with a passphrase.
type SecretCipher interface {
	// DeriveKey derives the AES-256 key for passphrase and salt. The returned
	// [Key] is opaque: it formats as "[redacted]" and can only be used by the
	// cipher itself. Fails with [ErrCrypto] if passphrase is empty or salt is
	// not [SaltSize] bytes long.
	DeriveKey(passphrase string, salt []byte) (Key, error)

	// Encrypt seals plaintext (which may be empty) under a key derived from
	// passphrase with a fresh salt and nonce, and returns the base64 record.
	// Two calls with the same input never return the same record. Fails with
	// [ErrCrypto]; it never falls back to returning plaintext.
	Encrypt(plaintext, passphrase string) (string, error)

	// Decrypt opens a record produced by Encrypt. Fails with [ErrDecode] if
	// record is not valid base64 or is too short, and with
	// [ErrAuthentication] if the tag does not verify (wrong passphrase,
	// corruption or tampering). No partial plaintext is ever returned.
	Decrypt(record, passphrase string) (string, error)
}

// KeyDeriver turns a passphrase and salt into [KeySize] bytes of key
// material.
type KeyDeriver interface {
	// Name identifies the function, e.g. "pbkdf2".
	Name() string

	// Derive returns exactly [KeySize] bytes.
	Derive(passphrase, salt []byte) []byte
}
