// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/MKhiriev/gamegenius/internal/config"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Names accepted by [NewKeyDeriver].
const (
	KDFPBKDF2   = "pbkdf2"
	KDFArgon2id = "argon2id"
)

// MinPBKDF2Iterations is the lowest iteration count [NewPBKDF2Deriver]
// accepts.
const MinPBKDF2Iterations = config.MinPBKDF2Iterations

type pbkdf2Deriver struct {
	iterations int
}

// NewPBKDF2Deriver returns a PBKDF2-HMAC-SHA256 [KeyDeriver]. Fails with
// [ErrCrypto] if iterations is below [MinPBKDF2Iterations].
func NewPBKDF2Deriver(iterations int) (KeyDeriver, error) {
	if iterations < MinPBKDF2Iterations {
		return nil, fmt.Errorf("%w: pbkdf2 iterations %d below %d", ErrCrypto, iterations, MinPBKDF2Iterations)
	}
	return &pbkdf2Deriver{iterations: iterations}, nil
}

func (d *pbkdf2Deriver) Name() string { return KDFPBKDF2 }

func (d *pbkdf2Deriver) Derive(passphrase, salt []byte) []byte {
	return pbkdf2.Key(passphrase, salt, d.iterations, KeySize, sha256.New)
}

// argon2idDeriver keeps the Argon2id tuning parameters so they can be
// adjusted per deployment target.
type argon2idDeriver struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2idDeriver returns an Argon2id [KeyDeriver]. Zero parameters are
// replaced by the OWASP recommendation: 1 iteration, 64 MiB, 4 threads.
func NewArgon2idDeriver(time, memory uint32, threads uint8) KeyDeriver {
	if time == 0 {
		time = 1
	}
	if memory == 0 {
		memory = 64 * 1024 // 64 MiB
	}
	if threads == 0 {
		threads = 4
	}
	return &argon2idDeriver{time: time, memory: memory, threads: threads}
}

func (d *argon2idDeriver) Name() string { return KDFArgon2id }

func (d *argon2idDeriver) Derive(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, d.time, d.memory, d.threads, KeySize)
}

// NewKeyDeriver builds the [KeyDeriver] selected by cfg.KDF.
func NewKeyDeriver(cfg config.ClientCrypto) (KeyDeriver, error) {
	switch cfg.KDF {
	case KDFPBKDF2, "":
		return NewPBKDF2Deriver(cfg.Iterations)
	case KDFArgon2id:
		return NewArgon2idDeriver(cfg.ArgonTime, cfg.ArgonMemory, cfg.ArgonThreads), nil
	default:
		return nil, fmt.Errorf("%w: unknown kdf %q", ErrCrypto, cfg.KDF)
	}
}
