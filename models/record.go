// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultRecord is a single stored credential.
//
// The store only ever sees the plaintext Title together with the opaque
// envelope (IV + EncryptedData). Payload is the client-side decrypted shadow
// of the envelope; it is excluded from every serialization so that plaintext
// can never travel to a store or over the wire.
type VaultRecord struct {
	// ID is the store-assigned identifier (UUIDv7 string).
	ID string `json:"id" bson:"_id"`

	// OwnerID is the identity the record belongs to.
	OwnerID string `json:"userId" bson:"ownerId"`

	// Title is a plaintext label, searchable on the server.
	Title string `json:"title" bson:"title"`

	// IV is the lowercase hex encoded 96-bit GCM nonce.
	IV string `json:"iv" bson:"iv"`

	// EncryptedData is the lowercase hex encoded ciphertext with the
	// 16-byte authentication tag appended.
	EncryptedData string `json:"encryptedData" bson:"encryptedData"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	// Payload is populated by the vault session after a successful decrypt.
	Payload *DecryptedPayload `json:"-" bson:"-"`
}

// Envelope returns the wire envelope carried by the record.
func (r VaultRecord) Envelope() Envelope {
	return Envelope{IV: r.IV, EncryptedData: r.EncryptedData}
}

// RecordInput is what create and update send to the record store.
type RecordInput struct {
	Title         string `json:"title"`
	IV            string `json:"iv"`
	EncryptedData string `json:"encryptedData"`
}

// Envelope returns the wire envelope carried by the input.
func (in RecordInput) Envelope() Envelope {
	return Envelope{IV: in.IV, EncryptedData: in.EncryptedData}
}

// NewRecordInput builds a [RecordInput] from a title and an encrypted envelope.
func NewRecordInput(title string, env Envelope) RecordInput {
	return RecordInput{Title: title, IV: env.IV, EncryptedData: env.EncryptedData}
}

// TableName returns the name of the database table / collection
// associated with the VaultRecord model.
func (r VaultRecord) TableName() string {
	return "vault_records"
}
