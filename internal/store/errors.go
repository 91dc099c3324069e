package store

import "jsonvault/internal/domain"

// Sentinel errors, re-exported so callers need not import domain.
var (
	ErrIO           = domain.ErrIO
	ErrDecode       = domain.ErrDecode
	ErrDecryption   = domain.ErrDecryption
	ErrEmptyPath    = domain.ErrEmptyPath
	ErrNotContainer = domain.ErrNotContainer
	ErrClosed       = domain.ErrClosed
)
