// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the caller identity in the context.
//
//	ctx := utils.WithIdentity(ctx, "a@b.com")
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetIdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(string)
	return identity, ok && identity != ""
}
