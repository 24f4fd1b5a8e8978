package crypto

import "errors"

var (
	// ErrDecryptionFailed covers tag mismatch, wrong key or IV length,
	// wrong key usage and undecodable plaintext.
	ErrDecryptionFailed = errors.New("decryption failed")

	ErrInvalidKeyLength = errors.New("key must be 32 bytes")
	ErrInvalidIVLength  = errors.New("iv must be 12 bytes")
	ErrKeyUsage         = errors.New("key usage does not permit operation")
)
