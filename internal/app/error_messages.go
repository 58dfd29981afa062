// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault API handlers, middleware and the remote client.
//
// All Msg* constants are human-readable message strings that are written into
// {"message": ...} response bodies. Keeping them in one place keeps the wording
// of the API consistent.
package app

const (
	// MsgNotAuthenticated is returned when the request carries no valid
	// bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgMissingRequiredFields is returned when title, iv or encryptedData
	// is absent or the envelope does not decode.
	MsgMissingRequiredFields = "Missing required fields"

	// MsgInvalidJSON is returned when the request body is not a single JSON
	// object of the expected shape.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgItemNotFound is returned for records that do not exist or belong to
	// another identity; the two cases are indistinguishable on purpose.
	MsgItemNotFound = "Item not found or you do not have permission"

	// MsgItemDeleted is the body of a successful delete.
	MsgItemDeleted = "Item deleted successfully"

	// MsgTooManyRequests is returned when the caller exceeds its rate limit.
	MsgTooManyRequests = "Too many requests"

	// MsgMethodNotAllowed is returned when the path exists but does not
	// accept the request method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
