package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher signs request bodies with HMAC-SHA256 under a fixed key. Hash
// instances are pooled, so a Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a [Hasher] keyed with hashKey.
//
// Example usage:
//
//	signature := utils.NewHasher("my-secret-key").Sign(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	h := &Hasher{}
	h.pool.New = func() any {
		return hmac.New(sha256.New, key)
	}
	return h
}

// Hash computes the raw HMAC-SHA256 digest of data.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Returns it to the pool
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Sign returns the hex-encoded HMAC-SHA256 digest of data, the value of
// the HashSHA256 request header.
func (h *Hasher) Sign(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher.Sign], this function creates a new HMAC instance on each
// call. Suitable for one-off hashing.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
