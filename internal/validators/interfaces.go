// Package validators checks record input before it reaches a record store.
//
// The server never sees plaintext, so validation is limited to what is
// visible on the wire: the title, and the shape of the iv/encryptedData
// envelope. Whether an envelope actually decrypts is only known on the
// client.
package validators

import "context"

// Validator validates a value. When fields are given, only those fields are
// checked (see the Field* constants); otherwise every rule applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
