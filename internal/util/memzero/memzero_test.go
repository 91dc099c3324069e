package memzero_test

import (
	"bytes"
	"testing"

	"jsonvault/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte("secret passphrase")
	memzero.Zero(b)
	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("buffer not wiped: %q", b)
	}
	memzero.Zero(nil)
}
