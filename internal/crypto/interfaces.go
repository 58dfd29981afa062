package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_engine_mock.go -package=mock

// Engine is the vault cryptography core. It has no knowledge of the network,
// the record store or the session; it only derives keys and seals/opens
// payloads.
//
//	key      = DeriveKey(masterSecret, identity)         PBKDF2-HMAC-SHA256, 100 000 rounds
//	envelope = EncryptData(key, payload)                 AES-256-GCM, fresh 96-bit nonce
//	payload  = DecryptData(key, iv, encryptedData)       fails closed on any tampering
type Engine interface {
	// DeriveKey deterministically turns a master secret and the owner identity
	// (used as salt) into a 256-bit AES key. Empty inputs yield ErrKeyDerivation.
	DeriveKey(masterSecret, saltIdentity string) (*DerivedKey, error)

	// EncryptData serializes payload to JSON and seals it under key with a
	// fresh random nonce. Two calls with identical inputs return different
	// envelopes.
	EncryptData(key *DerivedKey, payload models.DecryptedPayload) (models.Envelope, error)

	// DecryptData opens an envelope. Malformed hex, a wrong key, a wrong iv or
	// any modified bit return ErrDecryption; an authentic plaintext that is
	// not a payload object returns ErrPayloadFormat.
	DecryptData(key *DerivedKey, iv, encryptedData string) (models.DecryptedPayload, error)
}
