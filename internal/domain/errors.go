package domain

import "errors"

var (
	// ErrIO reports that the backing file could not be created, read or written.
	ErrIO = errors.New("document file i/o failed")
	// ErrDecode reports that the file does not hold a JSON object.
	ErrDecode = errors.New("document is not valid JSON")
	// ErrDecryption is returned when the key is wrong or the ciphertext has been modified / corrupted.
	ErrDecryption = errors.New("wrong key or corrupted document")
	// ErrEmptyPath is returned by writes that need at least one segment.
	ErrEmptyPath = errors.New("path must have at least one segment")
	// ErrNotContainer reports an intermediate value that cannot be replaced by a mapping.
	ErrNotContainer = errors.New("intermediate value is not a mapping")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
)
