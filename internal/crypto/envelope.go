package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// EncodeEnvelope hex-encodes a nonce and a sealed box (ciphertext ‖ tag).
// encoding/hex always emits lowercase digits.
func EncodeEnvelope(nonce, sealed []byte) models.Envelope {
	return models.Envelope{
		IV:            hex.EncodeToString(nonce),
		EncryptedData: hex.EncodeToString(sealed),
	}
}

// DecodeEnvelope validates and decodes an envelope. Only lowercase hex is
// accepted: flipping the case bit of a hex letter must not decode to the
// same bytes, otherwise tampering with the envelope text would go unnoticed.
// Any failure wraps ErrDecryption.
func DecodeEnvelope(env models.Envelope) (nonce, sealed []byte, err error) {
	nonce, err = decodeLowerHex(env.IV)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: iv: %w", ErrDecryption, err)
	}
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrDecryption, NonceSize, len(nonce))
	}

	sealed, err = decodeLowerHex(env.EncryptedData)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encrypted data: %w", ErrDecryption, err)
	}
	if len(sealed) < TagSize {
		return nil, nil, fmt.Errorf("%w: encrypted data shorter than authentication tag", ErrDecryption)
	}

	return nonce, sealed, nil
}

// ValidateEnvelope reports whether env is well formed without decrypting it.
// The server uses it to reject garbage before it reaches the store.
func ValidateEnvelope(env models.Envelope) error {
	_, _, err := DecodeEnvelope(env)
	return err
}

func decodeLowerHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd hex length %d", len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return nil, fmt.Errorf("invalid hex character %q at offset %d", c, i)
		}
	}
	return hex.DecodeString(s)
}
