package adapter

import "errors"

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrIdentityMismatch  = errors.New("token identity does not match session identity")
	ErrInvalidAddress    = errors.New("invalid adapter http address")
)
