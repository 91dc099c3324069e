package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// KDF names the passphrase key-derivation function recorded in an envelope.
type KDF string

const (
	KDFScrypt   KDF = "scrypt"
	KDFArgon2id KDF = "argon2id"
)

const saltBytes = 16

// Upper bounds on KDF cost. Parameters are read from the file before it is
// authenticated, so anything beyond these is rejected without deriving.
const (
	maxScryptN        = 1 << 20
	maxScryptRP       = 64
	maxScryptMemory   = 1 << 30 // bytes, 128*N*r
	maxArgon2Time     = 16
	maxArgon2MemoryKB = 1 << 21
)

// KDFParams holds the tunables for whichever KDF an envelope names.
type KDFParams struct {
	// scrypt
	N int `json:"N,omitempty"`
	R int `json:"r,omitempty"`
	P int `json:"p,omitempty"`

	// argon2id
	Time    uint32 `json:"t,omitempty"`
	Memory  uint32 `json:"m,omitempty"` // KiB
	Threads uint8  `json:"threads,omitempty"`
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() KDFParams { return KDFParams{N: 1 << 15, R: 8, P: 1} }

// Tunables for Argon2id key derivation (64 MiB, single pass).
func argon2ParamsDefault() KDFParams { return KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4} }

// deriveKey stretches passphrase into a chacha20poly1305 key.
func deriveKey(passphrase []byte, kdf KDF, salt []byte, p KDFParams) ([]byte, error) {
	if len(salt) != saltBytes {
		return nil, fmt.Errorf("invalid salt size %d", len(salt))
	}
	if err := checkParams(kdf, p); err != nil {
		return nil, err
	}
	switch kdf {
	case KDFScrypt:
		return scrypt.Key(passphrase, salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	default:
		return argon2.IDKey(passphrase, salt, p.Time, p.Memory, p.Threads, chacha20poly1305.KeySize), nil
	}
}

// checkParams rejects unknown KDFs and parameters outside the cost bounds.
func checkParams(kdf KDF, p KDFParams) error {
	switch kdf {
	case KDFScrypt:
		if p.N < 2 || p.N > maxScryptN || p.N&(p.N-1) != 0 {
			return fmt.Errorf("invalid scrypt N=%d", p.N)
		}
		if p.R < 1 || p.P < 1 || p.R > maxScryptRP || p.P > maxScryptRP || p.R*p.P > maxScryptRP {
			return fmt.Errorf("invalid scrypt r=%d p=%d", p.R, p.P)
		}
		if int64(128)*int64(p.N)*int64(p.R) > maxScryptMemory {
			return fmt.Errorf("scrypt N=%d r=%d needs too much memory", p.N, p.R)
		}
		return nil
	case KDFArgon2id:
		if p.Time == 0 || p.Time > maxArgon2Time {
			return fmt.Errorf("invalid argon2id t=%d", p.Time)
		}
		if p.Memory == 0 || p.Memory > maxArgon2MemoryKB || p.Threads == 0 {
			return fmt.Errorf("invalid argon2id m=%d threads=%d", p.Memory, p.Threads)
		}
		return nil
	default:
		return fmt.Errorf("unsupported kdf %q", kdf)
	}
}

func cacheKey(kdf KDF, salt []byte, p KDFParams) string {
	return fmt.Sprintf("%s|%x|%d|%d|%d|%d|%d|%d", kdf, salt, p.N, p.R, p.P, p.Time, p.Memory, p.Threads)
}
