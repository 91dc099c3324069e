package app

import (
	"go.uber.org/zap"

	"jsonvault/internal/store"
)

// App bundles the store and logger shared by CLI commands.
type App struct {
	Store *store.Store
	Log   *zap.Logger
}

// New validates cfg and opens the document it names.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Encrypt && !isSecurePassphrase(cfg.Key) {
		logger.Warn("weak passphrase",
			zap.Int("min_length", minPassphraseLength),
			zap.String("policy", "upper, lower, digit and symbol"))
	}
	st, err := store.Open(cfg.File, storeOptions(cfg, logger)...)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Debug("store opened",
		zap.String("file", st.Filename()),
		zap.Bool("encrypted", st.Encrypted()))
	return &App{Store: st, Log: logger}, nil
}

// Close flushes and closes the store.
func (a *App) Close() error {
	err := a.Store.Close()
	// Sync on stderr fails with EINVAL on some platforms; ignore it.
	_ = a.Log.Sync()
	return err
}
