package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrEmptyTitle            = errors.New("title is required")
	ErrTitleTooLong          = errors.New("title is too long")
	ErrEmptyIV               = errors.New("iv is required")
	ErrEmptyEncryptedData    = errors.New("encrypted data is required")
	ErrInvalidEnvelope       = errors.New("invalid envelope")
	ErrEmptyRecordID         = errors.New("record id is required")
	ErrEmptyOwner            = errors.New("owner identity is required")
)
