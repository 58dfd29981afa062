package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token issued for a vault identity.
//
// Identity is the "sub" claim: the owner e-mail that scopes every record
// store operation. It is the same string the client uses as PBKDF2 salt,
// so a token is only ever useful together with the matching master password.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the parsed, non-empty subject claim.
	Identity string `json:"-"`
}

// GetIdentity returns the subject claim of the token.
func (t *Token) GetIdentity() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting identity from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting identity from token: empty subject")
	}
	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
