package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jsonvault/internal/crypto"
	"jsonvault/internal/store"
)

// newLogger builds a production zap logger writing to stderr unless cfg
// supplies one.
func newLogger(cfg Config) (*zap.Logger, error) {
	if cfg.Logger != nil {
		return cfg.Logger, nil
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// storeOptions translates cfg into store options.
func storeOptions(cfg Config, logger *zap.Logger) []store.Option {
	opts := []store.Option{
		store.WithMinify(cfg.Minify),
		store.WithLogger(logger),
	}
	if cfg.Encrypt {
		var codecOpts []crypto.Option
		if cfg.KDF != "" {
			codecOpts = append(codecOpts, crypto.WithKDF(crypto.KDF(cfg.KDF)))
		}
		opts = append(opts, store.WithEncryption(cfg.Key, codecOpts...))
	}
	if cfg.Recover {
		opts = append(opts, store.WithRecovery())
	}
	return opts
}
