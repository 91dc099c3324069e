package store

import (
	"os"

	"go.uber.org/zap"

	"jsonvault/internal/crypto"
	"jsonvault/internal/domain"
)

// SyncPolicy decides when mutations reach the disk.
type SyncPolicy int

const (
	// SyncEager persists after every mutation before it returns.
	SyncEager SyncPolicy = iota
	// SyncManual keeps mutations in memory until Flush or Close.
	SyncManual
)

// VivifyPolicy decides which intermediate values a write may replace with an
// empty mapping.
type VivifyPolicy int

const (
	// VivifyFalsy replaces absent, null, false, 0 and "".
	VivifyFalsy VivifyPolicy = iota
	// VivifyAbsent replaces only absent and null.
	VivifyAbsent
	// VivifyAlways replaces any value that is not a mapping.
	VivifyAlways
)

// Option configures a Store at Open.
type Option func(*options)

type options struct {
	encrypt   bool
	key       string
	codecOpts []crypto.Option
	cipher    domain.Cipher
	persister domain.Persister

	minify  bool
	recover bool
	sync    SyncPolicy
	vivify  VivifyPolicy
	mode    os.FileMode
	logger  *zap.Logger
}

func defaultOptions() options {
	return options{
		sync:   SyncEager,
		vivify: VivifyFalsy,
		mode:   0o600,
		logger: zap.NewNop(),
	}
}

// WithEncryption enables the passphrase cipher with key.
func WithEncryption(key string, opts ...crypto.Option) Option {
	return func(o *options) {
		o.encrypt = true
		o.key = key
		o.codecOpts = opts
	}
}

// WithCipher enables encryption with a caller-supplied cipher. The caller
// keeps ownership of c: Store.Close does not close it.
func WithCipher(c domain.Cipher) Option {
	return func(o *options) {
		o.encrypt = c != nil
		o.cipher = c
	}
}

// WithPersister replaces the file persister, for example with an in-memory one.
func WithPersister(p domain.Persister) Option {
	return func(o *options) { o.persister = p }
}

// WithMinify writes compact JSON instead of 4-space indented JSON.
func WithMinify(minify bool) Option {
	return func(o *options) { o.minify = minify }
}

// WithRecovery makes Load and Save log failures and continue: a document that
// cannot be read or decrypted is replaced by an empty one, and a failed save
// leaves the file stale.
func WithRecovery() Option {
	return func(o *options) { o.recover = true }
}

// WithSyncPolicy sets when mutations are persisted.
func WithSyncPolicy(p SyncPolicy) Option {
	return func(o *options) { o.sync = p }
}

// WithVivifyPolicy sets which intermediate values a write may replace.
func WithVivifyPolicy(p VivifyPolicy) Option {
	return func(o *options) { o.vivify = p }
}

// WithFileMode sets the permissions of the backing file.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
