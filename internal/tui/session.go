package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Vault is the part of [vault.Session] the TUI drives.
type Vault interface {
	Identity() string
	State() vault.State
	Unlock(ctx context.Context, masterSecret string) error
	Lock()
	List(filter string) ([]models.VaultRecord, error)
	RecoverableErrors() []vault.RecordError
	Create(ctx context.Context, title string, payload models.DecryptedPayload) (models.VaultRecord, error)
	Update(ctx context.Context, id, title string, payload models.DecryptedPayload) (models.VaultRecord, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

var _ Vault = (*vault.Session)(nil)
