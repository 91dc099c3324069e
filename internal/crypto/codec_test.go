package crypto_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"jsonvault/internal/crypto"
	"jsonvault/internal/domain"
)

// cheap KDF settings keep the suite fast
func newCodec(pass string) *crypto.Codec {
	return crypto.NewCodec(pass, crypto.WithScrypt(1<<10, 8, 1))
}

func TestCodec_RoundTrip_OK(t *testing.T) {
	c := newCodec("pass")
	pt := []byte(`{"a":1}`)

	ct, err := c.Encrypt(pt)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Contains(ct, pt) {
		t.Fatal("ciphertext contains plaintext")
	}
	got, err := c.Decrypt(ct)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("want %q, got %q", pt, got)
	}
}

func TestCodec_FreshInstanceDecrypts(t *testing.T) {
	ct, err := newCodec("pass").Encrypt([]byte("{}"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	got, err := newCodec("pass").Decrypt(ct)
	if err != nil {
		t.Fatalf("decrypt with new codec: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("want {}, got %q", got)
	}
}

func TestCodec_CiphertextsDiffer(t *testing.T) {
	c := newCodec("pass")
	a, err := c.Encrypt([]byte("same"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	b, err := c.Encrypt([]byte("same"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("expected different ciphertexts for repeated encryption")
	}
}

func TestCodec_WrongPassphrase_Fails(t *testing.T) {
	ct, err := newCodec("correct").Encrypt([]byte("{}"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := newCodec("wrong").Decrypt(ct); !errors.Is(err, domain.ErrDecryption) {
		t.Fatalf("want ErrDecryption, got %v", err)
	}
}

func TestCodec_Tampered_Fails(t *testing.T) {
	c := newCodec("pass")
	ct, err := c.Encrypt([]byte(`{"k":"v"}`))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	var env map[string]any
	if err := json.Unmarshal(ct, &env); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	// flip the salt: it is authenticated data
	env["salt"] = "AAAAAAAAAAAAAAAAAAAAAA=="
	bad, _ := json.Marshal(env)

	if _, err := c.Decrypt(bad); !errors.Is(err, domain.ErrDecryption) {
		t.Fatalf("want ErrDecryption, got %v", err)
	}
}

func TestCodec_Malformed_Fails(t *testing.T) {
	c := newCodec("pass")
	for _, in := range []string{"not json", `{"v":9}`, `{"v":1,"kdf":"md5"}`, `{}`} {
		if _, err := c.Decrypt([]byte(in)); !errors.Is(err, domain.ErrDecryption) {
			t.Fatalf("%s: want ErrDecryption, got %v", in, err)
		}
	}
}

func TestCodec_Argon2id_RoundTrip(t *testing.T) {
	c := crypto.NewCodec("pass", crypto.WithArgon2id(1, 1024, 1))
	ct, err := c.Encrypt([]byte("hello"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if !bytes.Contains(ct, []byte(`"kdf":"argon2id"`)) {
		t.Fatalf("envelope does not name argon2id: %s", ct)
	}

	// The envelope carries its own parameters, so a scrypt codec can still open it.
	got, err := newCodec("pass").Decrypt(ct)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("want hello, got %q", got)
	}
}

func TestCodec_Close_RejectsUse(t *testing.T) {
	c := newCodec("pass")
	if _, err := c.Encrypt([]byte("x")); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := c.Encrypt([]byte("x")); err == nil {
		t.Fatal("expected error after close")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestCodec_ExcessiveKDFCost_Fails(t *testing.T) {
	c := newCodec("pass")
	salt := "AAAAAAAAAAAAAAAAAAAAAA=="
	nonce := "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	tests := []struct {
		name   string
		kdf    string
		params string
	}{
		{"argon2id time", "argon2id", `{"t":4000000000,"m":8,"threads":1}`},
		{"argon2id memory", "argon2id", `{"t":1,"m":4000000000,"threads":1}`},
		{"argon2id zero threads", "argon2id", `{"t":1,"m":8}`},
		{"scrypt N", "scrypt", `{"N":1073741824,"r":8,"p":1}`},
		{"scrypt N not power of two", "scrypt", `{"N":1000,"r":8,"p":1}`},
		{"scrypt r*p", "scrypt", `{"N":1024,"r":64,"p":64}`},
		{"scrypt r overflow", "scrypt", `{"N":1024,"r":4611686018427387904,"p":4}`},
		{"scrypt memory", "scrypt", `{"N":1048576,"r":64,"p":1}`},
	}
	for _, tc := range tests {
		env := `{"v":1,"kdf":"` + tc.kdf + `","salt":"` + salt + `","params":` + tc.params +
			`,"nonce":"` + nonce + `","cipher":"AAAA"}`
		if _, err := c.Decrypt([]byte(env)); !errors.Is(err, domain.ErrDecryption) {
			t.Fatalf("%s: want ErrDecryption, got %v", tc.name, err)
		}
	}
}

func TestCodec_ExcessiveKDFCost_RejectedOnEncrypt(t *testing.T) {
	c := crypto.NewCodec("pass", crypto.WithArgon2id(1000, 1024, 1))
	if _, err := c.Encrypt([]byte("{}")); err == nil {
		t.Fatal("expected out-of-range argon2id parameters to be rejected")
	}
}
