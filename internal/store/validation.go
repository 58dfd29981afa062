package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// normalizeInput trims the title and checks that every field every backend
// stores is present.
func normalizeInput(ownerID string, in models.RecordInput) (models.RecordInput, error) {
	if ownerID == "" {
		return in, fmt.Errorf("%w: empty owner", ErrInvalidRecord)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.IV == "" || in.EncryptedData == "" {
		return in, fmt.Errorf("%w: missing required fields", ErrInvalidRecord)
	}

	return in, nil
}

func checkScope(id, ownerID string) error {
	if id == "" || ownerID == "" {
		return ErrRecordNotFound
	}
	return nil
}
