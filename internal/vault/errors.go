package vault

import (
	"fmt"

	"github.com/MKhiriev/gamegenius/internal/crypto"
	"github.com/MKhiriev/gamegenius/internal/store"
)

// Errors returned by [SecretVault]. They are the cipher and store sentinels,
// re-exported so callers need a single import.
var (
	ErrCrypto         = crypto.ErrCrypto
	ErrAuthentication = crypto.ErrAuthentication
	ErrDecode         = crypto.ErrDecode
	ErrStorage        = store.ErrStorage
)

// ErrEmptyStorageKey is returned for an empty storage key. It wraps
// [ErrStorage].
var ErrEmptyStorageKey = fmt.Errorf("%w: empty storage key", ErrStorage)
