package models

// Envelope is the stable wire form of one encrypted payload.
// Both fields are lowercase hex: IV is always 24 characters (12 bytes),
// EncryptedData is ciphertext followed by the 16-byte GCM tag.
type Envelope struct {
	IV            string `json:"iv"`
	EncryptedData string `json:"encryptedData"`
}
