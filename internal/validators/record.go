package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names accepted by [RecordValidator.Validate] to restrict validation
// to a subset of fields.
const (
	// FieldTitle targets the plaintext record title.
	FieldTitle = "title"

	// FieldIV targets the hex encoded nonce of the envelope.
	FieldIV = "iv"

	// FieldEncryptedData targets the hex encoded ciphertext of the envelope.
	FieldEncryptedData = "encrypted_data"

	// FieldEnvelope checks that IV and EncryptedData decode to a well-formed
	// AES-GCM envelope (strict lowercase hex, 12-byte nonce, tag present).
	FieldEnvelope = "envelope"

	// FieldRecordID targets the store-assigned record id.
	FieldRecordID = "id"

	// FieldOwnerID targets the owner identity of a stored record.
	FieldOwnerID = "owner_id"
)

// MaxTitleLength is the longest title accepted, in runes.
const MaxTitleLength = 256

// RecordValidator implements [Validator] for [models.RecordInput] and
// [models.VaultRecord]. Both value and pointer forms are accepted.
//
// Missing title, iv or encryptedData fail with an error wrapping
// [ErrMissingRequiredFields], so transports can answer with a single
// "missing required fields" status.
type RecordValidator struct{}

// NewRecordValidator constructs a RecordValidator.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecordInput:
		return v.validateInput(ctx, value, fields...)
	case *models.RecordInput:
		if value == nil {
			return ErrMissingRequiredFields
		}
		return v.validateInput(ctx, *value, fields...)

	case models.VaultRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.VaultRecord:
		if value == nil {
			return ErrMissingRequiredFields
		}
		return v.validateRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateInput(_ context.Context, in models.RecordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldIV, FieldEncryptedData, FieldEnvelope}
	}

	for _, f := range fields {
		if err := validateField(f, in.Title, in.Envelope()); err != nil {
			return err
		}
	}

	return nil
}

func (v *RecordValidator) validateRecord(ctx context.Context, record models.VaultRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldOwnerID, FieldTitle, FieldIV, FieldEncryptedData, FieldEnvelope}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if record.ID == "" {
				return ErrEmptyRecordID
			}
		case FieldOwnerID:
			if record.OwnerID == "" {
				return ErrEmptyOwner
			}
		default:
			if err := validateField(f, record.Title, record.Envelope()); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateField(field, title string, env models.Envelope) error {
	switch field {
	case FieldTitle:
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			return fmt.Errorf("%w: %w", ErrMissingRequiredFields, ErrEmptyTitle)
		}
		if utf8.RuneCountInString(trimmed) > MaxTitleLength {
			return ErrTitleTooLong
		}
	case FieldIV:
		if env.IV == "" {
			return fmt.Errorf("%w: %w", ErrMissingRequiredFields, ErrEmptyIV)
		}
	case FieldEncryptedData:
		if env.EncryptedData == "" {
			return fmt.Errorf("%w: %w", ErrMissingRequiredFields, ErrEmptyEncryptedData)
		}
	case FieldEnvelope:
		if err := crypto.ValidateEnvelope(env); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
		}
	default:
		return ErrUnknownField
	}

	return nil
}
