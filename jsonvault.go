package jsonvault

import (
	"jsonvault/internal/crypto"
	"jsonvault/internal/domain"
	"jsonvault/internal/store"
)

// Type aliases expose the store types for compact imports.
type (
	Store        = store.Store
	Option       = store.Option
	SyncPolicy   = store.SyncPolicy
	VivifyPolicy = store.VivifyPolicy
	Path         = domain.Path
	Document     = domain.Document
	Cipher       = domain.Cipher
	Persister    = domain.Persister
	CodecOption  = crypto.Option
	KDF          = crypto.KDF
)

const (
	SyncEager    = store.SyncEager
	SyncManual   = store.SyncManual
	VivifyFalsy  = store.VivifyFalsy
	VivifyAbsent = store.VivifyAbsent
	VivifyAlways = store.VivifyAlways
	KDFScrypt    = crypto.KDFScrypt
	KDFArgon2id  = crypto.KDFArgon2id
)

var (
	Open = store.Open
	P    = domain.P

	WithEncryption   = store.WithEncryption
	WithCipher       = store.WithCipher
	WithPersister    = store.WithPersister
	WithMinify       = store.WithMinify
	WithRecovery     = store.WithRecovery
	WithSyncPolicy   = store.WithSyncPolicy
	WithVivifyPolicy = store.WithVivifyPolicy
	WithFileMode     = store.WithFileMode
	WithLogger       = store.WithLogger

	WithScrypt   = crypto.WithScrypt
	WithArgon2id = crypto.WithArgon2id
	WithKDF      = crypto.WithKDF
	NewCodec     = crypto.NewCodec
)

// Sentinel errors; match them with errors.Is.
var (
	ErrIO           = domain.ErrIO
	ErrDecode       = domain.ErrDecode
	ErrDecryption   = domain.ErrDecryption
	ErrEmptyPath    = domain.ErrEmptyPath
	ErrNotContainer = domain.ErrNotContainer
	ErrClosed       = domain.ErrClosed
)
