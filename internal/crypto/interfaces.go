package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/consent-keeper/models"

// PayloadCipher decrypts the browser-encrypted payloads of the consent
// flow. The browser generates a fresh AES-256 key and a 12-byte IV per
// payload and ships both next to the ciphertext, so the layer provides
// transport confidentiality only.
//
// Implementations are stateless and safe for concurrent use.
type PayloadCipher interface {
	// ImportKey accepts exactly 32 raw bytes as an AES-256-GCM key
	// restricted to usage.
	ImportKey(raw []byte, usage KeyUsage) (*Key, error)

	// Encrypt seals plaintext. The caller must never reuse an IV with the
	// same key.
	Encrypt(plaintext []byte, key *Key, iv []byte) ([]byte, error)

	// Decrypt opens ciphertext (with the 16-byte tag appended). Every
	// failure is reported as ErrDecryptionFailed.
	Decrypt(ciphertext []byte, key *Key, iv []byte) ([]byte, error)

	// OpenEnvelope imports the envelope key, decrypts the envelope and
	// JSON-decodes the plaintext into v.
	OpenEnvelope(env models.Envelope, v any) error

	// SealEnvelope JSON-encodes v and encrypts it under a fresh key and IV.
	SealEnvelope(v any) (models.Envelope, error)
}
