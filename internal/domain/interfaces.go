package domain

// Cipher seals and opens a serialized document.
//
// Encrypt may return different output for the same input on every call, but
// Decrypt must always recover the original plaintext under the same key.
// Decrypt failures caused by a wrong key or a damaged payload should wrap
// ErrDecryption.
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Persister owns the raw bytes of a single backing file.
type Persister interface {
	// Ensure creates the file from empty() when it does not exist yet and
	// reports whether it did. An existing file is never touched.
	Ensure(empty func() ([]byte, error)) (created bool, err error)
	// Read returns the full file contents.
	Read() ([]byte, error)
	// Write replaces the file contents.
	Write(b []byte) error
}
