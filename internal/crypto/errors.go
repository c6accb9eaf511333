package crypto

import "errors"

// Error taxonomy of the secret cipher. Every error returned by
// [SecretCipher] matches exactly one of these with [errors.Is].
var (
	// ErrCrypto is returned when a primitive is unavailable or misused:
	// empty passphrase, failing randomness source, bad key size or invalid
	// KDF parameters.
	ErrCrypto = errors.New("crypto error")

	// ErrAuthentication is returned when the authentication tag of a record
	// does not verify: the passphrase is wrong or the record was modified.
	ErrAuthentication = errors.New("authentication failed")

	// ErrDecode is returned when a record is not a validly encoded
	// salt ‖ nonce ‖ ciphertext blob.
	ErrDecode = errors.New("malformed ciphertext record")
)

var (
	errEmptyPassphrase = errors.New("empty passphrase")
	errBadSalt         = errors.New("invalid salt length")
	errRecordTooShort  = errors.New("record too short")

	errNonCanonicalRecord = errors.New("record is not canonical base64")
)
