// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DecryptedPayload is the secret part of a credential. It is serialized to
// JSON and encrypted as a whole; it never leaves the client in plaintext.
//
// All fields are optional. The JSON form with its fixed field order is the
// canonical plaintext fed into the cipher.
type DecryptedPayload struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// IsEmpty reports whether no field of the payload is set.
func (p DecryptedPayload) IsEmpty() bool {
	return p == DecryptedPayload{}
}
