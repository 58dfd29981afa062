package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// RecordValidationService rejects malformed create and update requests
// before they reach the wrapped RecordService.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) List(ctx context.Context, query string) ([]models.VaultRecord, error) {
	return v.inner.List(ctx, query)
}

func (v *RecordValidationService) Create(ctx context.Context, in models.RecordInput) (models.VaultRecord, error) {
	// title, iv and encryptedData are required; the envelope must decode
	if err := v.validator.Validate(ctx, in); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "RecordValidationService.Create").Msg("invalid record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, in)
}

func (v *RecordValidationService) Update(ctx context.Context, id string, in models.RecordInput) (models.VaultRecord, error) {
	if id == "" {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyRecordID)
	}
	if err := v.validator.Validate(ctx, in); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "RecordValidationService.Update").Str("record_id", id).Msg("invalid record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, in)
}

func (v *RecordValidationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyRecordID)
	}

	return v.inner.Delete(ctx, id)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}
