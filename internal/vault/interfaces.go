package vault

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// SecretVault persists secrets encrypted under a passphrase.
type SecretVault interface {
	// Save encrypts plaintext under passphrase and writes the record to
	// storageKey, overwriting any previous record.
	Save(ctx context.Context, storageKey, plaintext, passphrase string) error

	// Load reads and decrypts the record at storageKey. found is false, with
	// a nil error, when nothing is stored there.
	Load(ctx context.Context, storageKey, passphrase string) (plaintext string, found bool, err error)

	// Clear removes the record at storageKey. Clearing an absent key
	// succeeds.
	Clear(ctx context.Context, storageKey string) error
}
