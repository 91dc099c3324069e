package crypto

const (
	// The current supported version of the encrypted document format stored on disk.
	envelopeFormatVersion = 1
)

// envelope is the on-disk JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int       `json:"v"`
	KDF    KDF       `json:"kdf"`
	Salt   []byte    `json:"salt"`
	Params KDFParams `json:"params"`
	Nonce  []byte    `json:"nonce"`
	Cipher []byte    `json:"cipher"`
}
