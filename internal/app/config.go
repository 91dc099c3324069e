package app

import (
	"fmt"

	"go.uber.org/zap"

	"jsonvault/internal/crypto"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	File    string // backing document, e.g. ./data.json
	Encrypt bool   // encrypt the document at rest
	Key     string // passphrase used when Encrypt is set
	KDF     string // "scrypt" (default) or "argon2id"
	Minify  bool   // compact JSON output
	Recover bool   // treat unreadable documents as empty instead of failing
	Verbose bool   // debug logging

	Logger *zap.Logger // optional; replaces the logger built from Verbose
}

// Validate reports configuration that cannot produce a working store.
func (c Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("document file required (--file)")
	}
	switch crypto.KDF(c.KDF) {
	case "", crypto.KDFScrypt, crypto.KDFArgon2id:
	default:
		return fmt.Errorf("unknown kdf %q (want %s or %s)", c.KDF, crypto.KDFScrypt, crypto.KDFArgon2id)
	}
	return nil
}
