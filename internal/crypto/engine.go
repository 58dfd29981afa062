// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the vault cryptography core: PBKDF2-HMAC-SHA256
// key derivation from the master password and owner identity, and AES-256-GCM
// sealing of credential payloads into a lowercase hex envelope.
//
// The parameters below are part of the stored data format. Changing any of
// them makes every existing record undecryptable.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// KeyDerivationIterations is the fixed PBKDF2 round count.
	KeyDerivationIterations = 100_000
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce length in bytes (96 bits).
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

// engine is the private implementation of [Engine].
type engine struct {
	random io.Reader
}

// Option configures an [Engine].
type Option func(*engine)

// WithRandom replaces the nonce source. Intended for tests only.
func WithRandom(r io.Reader) Option {
	return func(e *engine) {
		e.random = r
	}
}

// NewEngine constructs an [Engine] backed by crypto/rand.
func NewEngine(opts ...Option) Engine {
	e := &engine{random: rand.Reader}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// DeriveKey calls DeriveKey on the default engine.
func DeriveKey(masterSecret, saltIdentity string) (*DerivedKey, error) {
	return defaultEngine.DeriveKey(masterSecret, saltIdentity)
}

// EncryptData calls EncryptData on the default engine.
func EncryptData(key *DerivedKey, payload models.DecryptedPayload) (models.Envelope, error) {
	return defaultEngine.EncryptData(key, payload)
}

// DecryptData calls DecryptData on the default engine.
func DecryptData(key *DerivedKey, iv, encryptedData string) (models.DecryptedPayload, error) {
	return defaultEngine.DecryptData(key, iv, encryptedData)
}

// DeriveKey implements [Engine]. The raw UTF-8 bytes of saltIdentity are the
// salt, so the same password under two identities yields unrelated keys.
func (e *engine) DeriveKey(masterSecret, saltIdentity string) (*DerivedKey, error) {
	if masterSecret == "" {
		return nil, fmt.Errorf("%w: empty master secret", ErrKeyDerivation)
	}
	if saltIdentity == "" {
		return nil, fmt.Errorf("%w: empty salt identity", ErrKeyDerivation)
	}

	secret := []byte(masterSecret)
	defer Zero(secret)

	raw := pbkdf2.Key(secret, []byte(saltIdentity), KeyDerivationIterations, KeySize, sha256.New)
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: unexpected key length %d", ErrKeyDerivation, len(raw))
	}

	return newDerivedKey(raw), nil
}

// EncryptData implements [Engine].
func (e *engine) EncryptData(key *DerivedKey, payload models.DecryptedPayload) (models.Envelope, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}
	defer Zero(plaintext)

	// 2. Generate a fresh nonce
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(e.random, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	// 3. Seal: ciphertext ‖ tag
	var sealed []byte
	err = key.use(func(raw []byte) error {
		gcm, err := newGCM(raw)
		if err != nil {
			return err
		}
		sealed = gcm.Seal(nil, nonce, plaintext, nil)
		return nil
	})
	if err != nil {
		return models.Envelope{}, err
	}

	return EncodeEnvelope(nonce, sealed), nil
}

// DecryptData implements [Engine]. No partial plaintext is ever returned.
func (e *engine) DecryptData(key *DerivedKey, iv, encryptedData string) (models.DecryptedPayload, error) {
	// 1. Decode and validate the envelope
	nonce, sealed, err := DecodeEnvelope(models.Envelope{IV: iv, EncryptedData: encryptedData})
	if err != nil {
		return models.DecryptedPayload{}, err
	}

	// 2. Open and verify the tag
	var plaintext []byte
	err = key.use(func(raw []byte) error {
		gcm, err := newGCM(raw)
		if err != nil {
			return err
		}
		plaintext, err = gcm.Open(nil, nonce, sealed, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecryption, err)
		}
		return nil
	})
	if err != nil {
		return models.DecryptedPayload{}, err
	}
	defer Zero(plaintext)

	// 3. Parse the authenticated plaintext
	return parsePayload(plaintext)
}

func newGCM(raw []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// parsePayload requires a single JSON object. Unknown members are ignored so
// that payloads written by newer clients still open.
func parsePayload(plaintext []byte) (models.DecryptedPayload, error) {
	trimmed := bytes.TrimSpace(plaintext)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.DecryptedPayload{}, fmt.Errorf("%w: not a JSON object", ErrPayloadFormat)
	}

	var payload models.DecryptedPayload
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&payload); err != nil {
		return models.DecryptedPayload{}, fmt.Errorf("%w: %w", ErrPayloadFormat, err)
	}
	if dec.More() {
		return models.DecryptedPayload{}, fmt.Errorf("%w: trailing data after object", ErrPayloadFormat)
	}

	return payload, nil
}
