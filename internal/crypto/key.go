package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Key is derived key material. Its bytes are unexported and it never prints
// its content.
type Key struct {
	material []byte
}

func (k Key) String() string { return "[redacted]" }

// GoString keeps %#v from printing the material.
func (k Key) GoString() string { return "crypto.Key{[redacted]}" }

// destroy zeroes the key material.
func (k *Key) destroy() {
	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
}

func (k Key) aead() (cipher.AEAD, error) {
	if len(k.material) != KeySize {
		return nil, fmt.Errorf("%w: invalid key length %d", ErrCrypto, len(k.material))
	}

	block, err := aes.NewCipher(k.material)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrCrypto, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrCrypto, err)
	}

	return gcm, nil
}
