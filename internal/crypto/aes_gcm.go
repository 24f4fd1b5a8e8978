// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/consent-keeper/models"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the GCM nonce length in bytes.
	IVSize = 12
)

// KeyUsage restricts what an imported key may be used for.
type KeyUsage uint8

const (
	UsageEncrypt KeyUsage = 1 << iota
	UsageDecrypt
)

// Key is an imported AES-256-GCM key.
type Key struct {
	aead  cipher.AEAD
	usage KeyUsage
}

func (k *Key) allows(u KeyUsage) bool {
	return k != nil && k.usage&u == u
}

// aesGCM is the AES-256-GCM implementation of [PayloadCipher].
type aesGCM struct {
	random io.Reader
}

// NewPayloadCipher returns the AES-256-GCM [PayloadCipher].
func NewPayloadCipher() PayloadCipher {
	return &aesGCM{random: rand.Reader}
}

func (c *aesGCM) ImportKey(raw []byte, usage KeyUsage) (*Key, error) {
	if len(raw) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &Key{aead: gcm, usage: usage}, nil
}

func (c *aesGCM) Encrypt(plaintext []byte, key *Key, iv []byte) ([]byte, error) {
	if !key.allows(UsageEncrypt) {
		return nil, ErrKeyUsage
	}
	if len(iv) != IVSize {
		return nil, ErrInvalidIVLength
	}

	return key.aead.Seal(nil, iv, plaintext, nil), nil
}

func (c *aesGCM) Decrypt(ciphertext []byte, key *Key, iv []byte) ([]byte, error) {
	if !key.allows(UsageDecrypt) {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrKeyUsage)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrInvalidIVLength)
	}

	plaintext, err := key.aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (c *aesGCM) OpenEnvelope(env models.Envelope, v any) error {
	key, err := c.ImportKey(env.Key, UsageDecrypt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	plaintext, err := c.Decrypt(env.Ciphertext, key, env.IV)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: unmarshal payload: %w", ErrDecryptionFailed, err)
	}

	return nil
}

func (c *aesGCM) SealEnvelope(v any) (models.Envelope, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}

	raw := make([]byte, KeySize)
	if _, err = io.ReadFull(c.random, raw); err != nil {
		return models.Envelope{}, fmt.Errorf("generate key: %w", err)
	}
	iv, err := c.newIV()
	if err != nil {
		return models.Envelope{}, err
	}

	key, err := c.ImportKey(raw, UsageEncrypt)
	if err != nil {
		return models.Envelope{}, err
	}
	ciphertext, err := c.Encrypt(plaintext, key, iv)
	if err != nil {
		return models.Envelope{}, err
	}

	return models.Envelope{Ciphertext: ciphertext, Key: raw, IV: iv}, nil
}

func (c *aesGCM) newIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	return iv, nil
}

// NewIV returns a random 12-byte IV from the OS CSPRNG.
func NewIV() ([]byte, error) {
	return (&aesGCM{random: rand.Reader}).newIV()
}
