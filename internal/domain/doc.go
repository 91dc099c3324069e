// Package domain defines the core document model and the contracts shared
// between the store, the cipher and the persistence layer.
//
// It contains plain types (Path, Document) and interfaces (Cipher, Persister)
// only, plus the sentinel errors every layer wraps.
package domain
