package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	identity := "a@b.com"
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, identity, time.Hour, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Identity != identity {
		t.Errorf("expected identity %s, got %s", identity, token.Identity)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != identity {
		t.Errorf("expected subject %q, got %s", identity, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@b.com", time.Hour, "key"},
		{"empty identity", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "a@b.com", 0, "key"},
		{"empty key", "iss", "a@b.com", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, "owner@example.com", 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Identity != "owner@example.com" {
		t.Errorf("expected identity owner@example.com, got %s", parsedToken.Identity)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "a@b.com", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "a@b.com", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "a@b.com", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	if err == nil {
		t.Error("expected error for empty subject, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer tok", "tok", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", true},
		{"empty", "", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
