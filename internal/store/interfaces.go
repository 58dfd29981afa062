package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore persists opaque vault records. Every operation is scoped to
// ownerID: a record that belongs to another owner is indistinguishable from
// a missing one and yields ErrRecordNotFound.
//
// Implementations never see plaintext secrets; only Title is readable.
type RecordStore interface {
	// List returns all records of ownerID ordered by creation time.
	List(ctx context.Context, ownerID string) ([]models.VaultRecord, error)

	// Create stores a new record and returns it with ID and timestamps set.
	Create(ctx context.Context, ownerID string, in models.RecordInput) (models.VaultRecord, error)

	// Update replaces title and envelope of record id owned by ownerID.
	Update(ctx context.Context, id, ownerID string, in models.RecordInput) (models.VaultRecord, error)

	// Delete removes record id owned by ownerID.
	Delete(ctx context.Context, id, ownerID string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
