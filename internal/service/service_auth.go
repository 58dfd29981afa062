package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService is the JWT implementation of AuthService.
//
// Tokens are issued by the operator for an identity (there is no login
// endpoint: password storage is out of scope). The identity travels in the
// "sub" claim and scopes every record store call.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token parameters in cfg.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken signs a JWT for identity. The identity must look like an
// e-mail address, since the client uses the same string as key derivation
// salt.
func (a *authService) IssueToken(ctx context.Context, identity string) (models.Token, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" || !strings.Contains(identity, "@") {
		return models.Token{}, fmt.Errorf("%w: identity must be an e-mail address", ErrInvalidDataProvided)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.IssueToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, wrong signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveIdentity implements the identity collaborator over the
// Authorization header of r.
func (a *authService) ResolveIdentity(r *http.Request) (string, error) {
	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	token, err := a.ParseToken(r.Context(), tokenString)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token.Identity, nil
}
