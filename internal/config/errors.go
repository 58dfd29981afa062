package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a base URL without scheme or a missing token).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or in-memory DSN for a local vault).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token parameters.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listen or rate limit settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSessionConfigs indicates a missing identity or a negative
	// auto-lock period.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
