// Package crypto implements the passphrase cipher used to protect documents
// at rest.
//
// Contents
//
//   - Codec, a domain.Cipher that seals a serialized document into a JSON
//     envelope with XChaCha20-Poly1305 (NewCodec, Encrypt, Decrypt, Close)
//   - Key derivation from the passphrase with scrypt (default) or Argon2id
//     (WithScrypt, WithArgon2id)
//
// # Envelope
//
// The envelope is a small versioned JSON object carrying the KDF name and
// parameters, the salt, the nonce and the ciphertext. The salt is bound as
// associated data, so a modified header fails authentication just like a
// modified ciphertext, and a wrong passphrase is always reported as
// domain.ErrDecryption rather than as garbled plaintext.
//
// # Notes
//
// A Codec derives its key once and caches it, so repeated saves do not pay
// for a KDF run each time. Call Close to wipe the cached key material.
package crypto
