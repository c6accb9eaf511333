package crypto

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/gamegenius/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPBKDF2Deriver_RejectsWeakIterations(t *testing.T) {
	d, err := NewPBKDF2Deriver(MinPBKDF2Iterations - 1)
	assert.ErrorIs(t, err, ErrCrypto)
	assert.Nil(t, d)
}

func TestPBKDF2Deriver_DeterministicAndSalted(t *testing.T) {
	d, err := NewPBKDF2Deriver(MinPBKDF2Iterations)
	require.NoError(t, err)
	assert.Equal(t, KDFPBKDF2, d.Name())

	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1 := d.Derive([]byte("pass"), salt1)
	k2 := d.Derive([]byte("pass"), salt1)
	k3 := d.Derive([]byte("pass"), salt2)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestArgon2idDeriver_Defaults(t *testing.T) {
	d := NewArgon2idDeriver(0, 0, 0).(*argon2idDeriver)

	assert.Equal(t, uint32(1), d.time)
	assert.Equal(t, uint32(64*1024), d.memory)
	assert.Equal(t, uint8(4), d.threads)
	assert.Equal(t, KDFArgon2id, d.Name())
}

func TestArgon2idDeriver_DeterministicAndSalted(t *testing.T) {
	d := NewArgon2idDeriver(1, 8*1024, 1)

	salt1 := bytes.Repeat([]byte{0xAB}, SaltSize)
	salt2 := bytes.Repeat([]byte{0xCD}, SaltSize)

	k1 := d.Derive([]byte("pass"), salt1)
	k2 := d.Derive([]byte("pass"), salt1)
	k3 := d.Derive([]byte("pass"), salt2)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestNewKeyDeriver(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ClientCrypto
		wantName string
		wantErr  bool
	}{
		{name: "pbkdf2", cfg: config.ClientCrypto{KDF: "pbkdf2", Iterations: 100_000}, wantName: KDFPBKDF2},
		{name: "empty defaults to pbkdf2", cfg: config.ClientCrypto{Iterations: 100_000}, wantName: KDFPBKDF2},
		{name: "argon2id", cfg: config.ClientCrypto{KDF: "argon2id", ArgonMemory: 8 * 1024}, wantName: KDFArgon2id},
		{name: "weak pbkdf2", cfg: config.ClientCrypto{KDF: "pbkdf2", Iterations: 10}, wantErr: true},
		{name: "unknown", cfg: config.ClientCrypto{KDF: "scrypt"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewKeyDeriver(tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCrypto)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

// TestSecretCipher_WithPBKDF2 runs the round trip and wrong-key checks
// through the production deriver.
func TestSecretCipher_WithPBKDF2(t *testing.T) {
	d, err := NewPBKDF2Deriver(MinPBKDF2Iterations)
	require.NoError(t, err)
	c := NewSecretCipher(d)

	record, err := c.Encrypt("sk-test-123", "K1")
	require.NoError(t, err)

	got, err := c.Decrypt(record, "K1")
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", got)

	_, err = c.Decrypt(record, "K2")
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestSecretCipher_WithArgon2id(t *testing.T) {
	c := NewSecretCipher(NewArgon2idDeriver(1, 8*1024, 1))

	record, err := c.Encrypt("", "pass")
	require.NoError(t, err)

	got, err := c.Decrypt(record, "pass")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
