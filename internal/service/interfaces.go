package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RecordService exposes the record store to the HTTP API. The owner of every
// call is the identity stored in ctx by the auth middleware; a call without
// one fails with ErrUnauthenticated.
type RecordService interface {
	// List returns the caller's records. A non-blank query keeps records whose
	// title contains it, ignoring case.
	List(ctx context.Context, query string) ([]models.VaultRecord, error)
	Create(ctx context.Context, in models.RecordInput) (models.VaultRecord, error)
	Update(ctx context.Context, id string, in models.RecordInput) (models.VaultRecord, error)
	Delete(ctx context.Context, id string) error
}

// AuthService is the identity collaborator: it issues tokens for an identity
// and resolves the identity behind a request.
type AuthService interface {
	IssueToken(ctx context.Context, identity string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveIdentity returns the identity of the bearer token in r.
	ResolveIdentity(r *http.Request) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}
