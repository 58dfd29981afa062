// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	validIV   = "000102030405060708090a0b"
	validData = "00112233445566778899aabbccddeeff"
)

func validInput() models.RecordInput {
	return models.RecordInput{Title: "Mail", IV: validIV, EncryptedData: validData}
}

func TestNewRecordValidator(t *testing.T) {
	v := NewRecordValidator()
	require.NotNil(t, v)

	_, ok := v.(*RecordValidator)
	assert.True(t, ok)
}

func TestRecordValidator_Input(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(in *models.RecordInput)
		wantErr  error
		required bool
	}{
		{name: "valid", modify: func(*models.RecordInput) {}},
		{name: "empty title", modify: func(in *models.RecordInput) { in.Title = "" }, wantErr: ErrEmptyTitle, required: true},
		{name: "blank title", modify: func(in *models.RecordInput) { in.Title = " \t" }, wantErr: ErrEmptyTitle, required: true},
		{name: "long title", modify: func(in *models.RecordInput) { in.Title = strings.Repeat("й", MaxTitleLength+1) }, wantErr: ErrTitleTooLong},
		{name: "missing iv", modify: func(in *models.RecordInput) { in.IV = "" }, wantErr: ErrEmptyIV, required: true},
		{name: "missing data", modify: func(in *models.RecordInput) { in.EncryptedData = "" }, wantErr: ErrEmptyEncryptedData, required: true},
		{name: "short iv", modify: func(in *models.RecordInput) { in.IV = "0001" }, wantErr: ErrInvalidEnvelope},
		{name: "uppercase hex", modify: func(in *models.RecordInput) { in.IV = strings.ToUpper(validIV) }, wantErr: ErrInvalidEnvelope},
		{name: "data without tag", modify: func(in *models.RecordInput) { in.EncryptedData = "0011" }, wantErr: ErrInvalidEnvelope},
	}

	v := NewRecordValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			err := v.Validate(context.Background(), in)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.required, errors.Is(err, ErrMissingRequiredFields))
		})
	}
}

func TestRecordValidator_Pointers(t *testing.T) {
	v := NewRecordValidator()
	in := validInput()

	require.NoError(t, v.Validate(context.Background(), &in))

	var nilInput *models.RecordInput
	require.ErrorIs(t, v.Validate(context.Background(), nilInput), ErrMissingRequiredFields)

	var nilRecord *models.VaultRecord
	require.ErrorIs(t, v.Validate(context.Background(), nilRecord), ErrMissingRequiredFields)
}

func TestRecordValidator_FieldScoping(t *testing.T) {
	v := NewRecordValidator()
	// конверт битый, но проверяем только заголовок
	in := models.RecordInput{Title: "Mail", IV: "zz", EncryptedData: "zz"}

	require.NoError(t, v.Validate(context.Background(), in, FieldTitle, FieldIV, FieldEncryptedData))
	require.ErrorIs(t, v.Validate(context.Background(), in, FieldEnvelope), ErrInvalidEnvelope)
	require.ErrorIs(t, v.Validate(context.Background(), in, "bogus"), ErrUnknownField)
}

func TestRecordValidator_Record(t *testing.T) {
	v := NewRecordValidator()
	record := models.VaultRecord{ID: "rec-1", OwnerID: "a@b.com", Title: "Mail", IV: validIV, EncryptedData: validData}

	require.NoError(t, v.Validate(context.Background(), record))

	noID := record
	noID.ID = ""
	require.ErrorIs(t, v.Validate(context.Background(), noID), ErrEmptyRecordID)

	noOwner := record
	noOwner.OwnerID = ""
	require.ErrorIs(t, v.Validate(context.Background(), &noOwner), ErrEmptyOwner)

	// без id допускается, если его не просили проверять
	require.NoError(t, v.Validate(context.Background(), noID, FieldTitle, FieldEnvelope))
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()

	require.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	require.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
