package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"jsonvault/internal/domain"
)

// FilePersister reads and atomically replaces a single file on disk.
type FilePersister struct {
	path string
	mode os.FileMode
}

// NewFilePersister returns a FilePersister for path; new files get mode.
func NewFilePersister(path string, mode os.FileMode) *FilePersister {
	return &FilePersister{path: path, mode: mode}
}

// Ensure creates the file (and its directory) from empty() if it is missing.
func (f *FilePersister) Ensure(empty func() ([]byte, error)) (bool, error) {
	_, err := os.Stat(f.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	b, err := empty()
	if err != nil {
		return false, err
	}
	if err := f.Write(b); err != nil {
		return false, err
	}
	return true, nil
}

// Read returns the whole file.
func (f *FilePersister) Read() ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return b, nil
}

// Write stages b in a temp file beside the target, fsyncs it and renames it
// over the target. Failures wrap domain.ErrIO.
func (f *FilePersister) Write(b []byte) error {
	dir, base := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	// Nothing is left to remove once the rename succeeds.
	defer func() { _ = os.Remove(tmp.Name()) }()

	err = stage(tmp, b, f.mode)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), f.path)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}

func stage(tmp *os.File, b []byte, mode os.FileMode) error {
	if _, err := tmp.Write(b); err != nil {
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	return tmp.Sync()
}

// Compile-time assertion that FilePersister implements domain.Persister.
var _ domain.Persister = (*FilePersister)(nil)
