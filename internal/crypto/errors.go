package crypto

import "errors"

var (
	ErrKeyDerivation      = errors.New("key derivation failed")
	ErrDecryption         = errors.New("decryption failed")
	ErrPayloadFormat      = errors.New("decrypted payload has invalid format")
	ErrInvalidKey         = errors.New("invalid or wiped encryption key")
	ErrKeyNotSerializable = errors.New("derived key must not be serialized")
)
