package vault

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/gamegenius/internal/crypto"
	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/internal/mock"
	"github.com/MKhiriev/gamegenius/internal/store"
)

const (
	testStorageKey = "apiKey"
	testPassphrase = "K"
)

func newCipher(t *testing.T) crypto.SecretCipher {
	t.Helper()
	deriver, err := crypto.NewPBKDF2Deriver(crypto.MinPBKDF2Iterations)
	require.NoError(t, err)
	return crypto.NewSecretCipher(deriver)
}

func newTestVault(t *testing.T) (SecretVault, store.KeyValueStore) {
	t.Helper()
	kv := store.NewMemoryStore(0)
	t.Cleanup(func() { kv.Close() })
	return New(newCipher(t), kv, logger.Nop()), kv
}

func TestVault_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", testPassphrase))

	got, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "sk-test-123", got)
}

func TestVault_EmptyPlaintextRoundTrip(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "", testPassphrase))

	got, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", got)
}

func TestVault_StoresCiphertextOnly(t *testing.T) {
	ctx := context.Background()
	v, kv := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", testPassphrase))

	record, found, err := kv.Get(ctx, testStorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, record, "sk-test-123")

	_, err = base64.StdEncoding.DecodeString(record)
	assert.NoError(t, err)
}

func TestVault_SaveIsNonDeterministic(t *testing.T) {
	ctx := context.Background()
	v, kv := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", testPassphrase))
	first, _, _ := kv.Get(ctx, testStorageKey)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", testPassphrase))
	second, _, _ := kv.Get(ctx, testStorageKey)

	assert.NotEqual(t, first, second)
}

func TestVault_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "old", testPassphrase))
	require.NoError(t, v.Save(ctx, testStorageKey, "new", testPassphrase))

	got, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", got)
}

func TestVault_LoadAbsent(t *testing.T) {
	v, _ := newTestVault(t)

	got, found, err := v.Load(context.Background(), testStorageKey, testPassphrase)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestVault_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", "K1"))

	got, found, err := v.Load(ctx, testStorageKey, "K2")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestVault_TamperedRecord(t *testing.T) {
	ctx := context.Background()
	v, kv := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", testPassphrase))

	record, _, err := kv.Get(ctx, testStorageKey)
	require.NoError(t, err)
	blob, err := base64.StdEncoding.DecodeString(record)
	require.NoError(t, err)
	blob[len(blob)/2] ^= 0x80
	require.NoError(t, kv.Set(ctx, testStorageKey, base64.StdEncoding.EncodeToString(blob)))

	_, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.False(t, found)
}

func TestVault_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	v, kv := newTestVault(t)

	require.NoError(t, kv.Set(ctx, testStorageKey, "not base64 at all!"))

	_, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	assert.ErrorIs(t, err, ErrDecode)
	assert.False(t, found)
}

func TestVault_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", testPassphrase))
	require.NoError(t, v.Clear(ctx, testStorageKey))
	require.NoError(t, v.Clear(ctx, testStorageKey))

	_, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVault_ClearNeverSaved(t *testing.T) {
	v, _ := newTestVault(t)

	assert.NoError(t, v.Clear(context.Background(), "never-saved"))
}

func TestVault_EmptyPassphrase(t *testing.T) {
	ctx := context.Background()
	v, kv := newTestVault(t)

	err := v.Save(ctx, testStorageKey, "sk-test-123", "")
	assert.ErrorIs(t, err, ErrCrypto)

	_, found, _ := kv.Get(ctx, testStorageKey)
	assert.False(t, found, "nothing must be written when encryption fails")
}

func TestVault_EmptyStorageKey(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	assert.ErrorIs(t, v.Save(ctx, "", "x", testPassphrase), ErrStorage)
	_, _, err := v.Load(ctx, "", testPassphrase)
	assert.ErrorIs(t, err, ErrEmptyStorageKey)
	assert.ErrorIs(t, v.Clear(ctx, ""), ErrEmptyStorageKey)
}

func TestVault_ConcurrentSavesLastWriteWins(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	values := []string{"a", "b", "c", "d"}
	var wg sync.WaitGroup
	for _, value := range values {
		wg.Add(1)
		go func(value string) {
			defer wg.Done()
			assert.NoError(t, v.Save(ctx, testStorageKey, value, testPassphrase))
		}(value)
	}
	wg.Wait()

	got, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, values, got)
}

func TestVault_StoreFailures(t *testing.T) {
	ctx := context.Background()
	plainErr := errors.New("disk on fire")
	quotaErr := store.NewMemoryStore(1).Set(ctx, "k", "too long")
	require.ErrorIs(t, quotaErr, store.ErrQuotaExceeded)

	tests := []struct {
		name     string
		setup    func(kv *mock.MockKeyValueStore)
		call     func(v SecretVault) error
		wantErrs []error
	}{
		{
			name: "save with unwrapped store error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Set(gomock.Any(), testStorageKey, gomock.Any()).Return(plainErr)
			},
			call:     func(v SecretVault) error { return v.Save(ctx, testStorageKey, "x", testPassphrase) },
			wantErrs: []error{ErrStorage, plainErr},
		},
		{
			name: "save over quota",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Set(gomock.Any(), testStorageKey, gomock.Any()).Return(quotaErr)
			},
			call:     func(v SecretVault) error { return v.Save(ctx, testStorageKey, "x", testPassphrase) },
			wantErrs: []error{ErrStorage, store.ErrQuotaExceeded},
		},
		{
			name: "load unavailable",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Get(gomock.Any(), testStorageKey).Return("", false, store.ErrStoreUnavailable)
			},
			call: func(v SecretVault) error {
				_, _, err := v.Load(ctx, testStorageKey, testPassphrase)
				return err
			},
			wantErrs: []error{ErrStorage, store.ErrStoreUnavailable},
		},
		{
			name: "clear failure",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Remove(gomock.Any(), testStorageKey).Return(plainErr)
			},
			call:     func(v SecretVault) error { return v.Clear(ctx, testStorageKey) },
			wantErrs: []error{ErrStorage, plainErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kv := mock.NewMockKeyValueStore(ctrl)
			tt.setup(kv)

			err := tt.call(New(newCipher(t), kv, logger.Nop()))
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			assert.NotErrorIs(t, err, ErrCrypto)
			assert.NotErrorIs(t, err, ErrAuthentication)
		})
	}
}

func TestVault_CipherFailureSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockSecretCipher(ctrl)
	kv := mock.NewMockKeyValueStore(ctrl)

	cipher.EXPECT().Encrypt("sk-test-123", testPassphrase).Return("", crypto.ErrCrypto)

	err := New(cipher, kv, logger.Nop()).Save(context.Background(), testStorageKey, "sk-test-123", testPassphrase)
	assert.ErrorIs(t, err, ErrCrypto)
	assert.NotErrorIs(t, err, ErrStorage)
}

func TestVault_ForwardsContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	ctrl := gomock.NewController(t)
	cipher := mock.NewMockSecretCipher(ctrl)
	kv := mock.NewMockKeyValueStore(ctrl)

	cipher.EXPECT().Encrypt("v", testPassphrase).Return("record", nil)
	kv.EXPECT().Set(ctx, testStorageKey, "record").Return(nil)
	kv.EXPECT().Get(ctx, testStorageKey).Return("record", true, nil)
	cipher.EXPECT().Decrypt("record", testPassphrase).Return("v", nil)

	v := New(cipher, kv, logger.Nop())
	require.NoError(t, v.Save(ctx, testStorageKey, "v", testPassphrase))

	got, found, err := v.Load(ctx, testStorageKey, testPassphrase)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", got)
}

func TestVault_ErrorsNeverContainSecrets(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	require.NoError(t, v.Save(ctx, testStorageKey, "sk-test-123", "K1"))
	_, _, err := v.Load(ctx, testStorageKey, "K2")
	require.Error(t, err)

	assert.False(t, strings.Contains(err.Error(), "sk-test-123"))
	assert.False(t, strings.Contains(err.Error(), "K1"))
}
