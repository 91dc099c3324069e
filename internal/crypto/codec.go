package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"jsonvault/internal/domain"
	"jsonvault/internal/util/memzero"
)

var errCodecClosed = errors.New("codec is closed")

// Option configures a Codec.
type Option func(*Codec)

// WithScrypt selects scrypt with the given cost parameters.
func WithScrypt(n, r, p int) Option {
	return func(c *Codec) {
		c.kdf = KDFScrypt
		c.params = KDFParams{N: n, R: r, P: p}
	}
}

// WithArgon2id selects Argon2id. memory is in KiB.
func WithArgon2id(time, memory uint32, threads uint8) Option {
	return func(c *Codec) {
		c.kdf = KDFArgon2id
		c.params = KDFParams{Time: time, Memory: memory, Threads: threads}
	}
}

// WithKDF selects a KDF by name using its default parameters.
func WithKDF(kdf KDF) Option {
	return func(c *Codec) {
		switch kdf {
		case KDFArgon2id:
			c.kdf, c.params = KDFArgon2id, argon2ParamsDefault()
		default:
			c.kdf, c.params = KDFScrypt, scryptParamsDefault()
		}
	}
}

// Codec encrypts documents under a passphrase.
//
// A Codec is not safe for concurrent use.
type Codec struct {
	passphrase []byte
	kdf        KDF
	params     KDFParams

	// sealing key and the salt it was derived with
	salt []byte
	key  []byte

	keys   map[string][]byte
	closed bool
}

// NewCodec returns a Codec bound to passphrase. An empty passphrase is allowed.
func NewCodec(passphrase string, opts ...Option) *Codec {
	c := &Codec{
		passphrase: []byte(passphrase),
		kdf:        KDFScrypt,
		params:     scryptParamsDefault(),
		keys:       make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt seals plaintext into a JSON envelope with a fresh random nonce.
func (c *Codec) Encrypt(plaintext []byte) ([]byte, error) {
	if c.closed {
		return nil, errCodecClosed
	}
	if c.key == nil {
		salt := make([]byte, saltBytes)
		if _, err := rand.Read(salt); err != nil {
			return nil, err
		}
		key, err := c.keyFor(c.kdf, salt, c.params)
		if err != nil {
			return nil, err
		}
		c.salt, c.key = salt, key
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, plaintext, c.salt)

	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		KDF:    c.kdf,
		Salt:   c.salt,
		Params: c.params,
		Nonce:  nonce,
		Cipher: ct,
	})
}

// Decrypt opens an envelope produced by Encrypt.
//
// Every failure, including a malformed envelope, wraps domain.ErrDecryption.
func (c *Codec) Decrypt(ciphertext []byte) ([]byte, error) {
	if c.closed {
		return nil, errCodecClosed
	}
	var env envelope
	if err := json.Unmarshal(ciphertext, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed envelope: %w", domain.ErrDecryption, err)
	}
	if env.V < 1 || env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("%w: unsupported envelope version %d", domain.ErrDecryption, env.V)
	}

	if err := checkParams(env.KDF, env.Params); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecryption, err)
	}
	key, err := c.keyFor(env.KDF, env.Salt, env.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecryption, err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: invalid nonce size %d", domain.ErrDecryption, len(env.Nonce))
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, env.Salt)
	if err != nil {
		return nil, domain.ErrDecryption
	}

	// Keep sealing under the file's salt so a session runs the KDF once.
	if c.key == nil && env.KDF == c.kdf && env.Params == c.params {
		c.salt, c.key = append([]byte(nil), env.Salt...), key
	}
	return pt, nil
}

// Close wipes the passphrase and every derived key. The Codec is unusable afterwards.
func (c *Codec) Close() error {
	if c.closed {
		return nil
	}
	memzero.Zero(c.passphrase)
	for k, key := range c.keys {
		memzero.Zero(key)
		delete(c.keys, k)
	}
	c.salt, c.key = nil, nil
	c.closed = true
	return nil
}

func (c *Codec) keyFor(kdf KDF, salt []byte, p KDFParams) ([]byte, error) {
	ck := cacheKey(kdf, salt, p)
	if key, ok := c.keys[ck]; ok {
		return key, nil
	}
	key, err := deriveKey(c.passphrase, kdf, salt, p)
	if err != nil {
		return nil, err
	}
	c.keys[ck] = key
	return key, nil
}

// Compile-time assertion that Codec implements domain.Cipher.
var _ domain.Cipher = (*Codec)(nil)
