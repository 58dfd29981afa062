package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnauthenticated     = errors.New("identity could not be resolved")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
