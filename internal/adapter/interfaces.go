// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the client use the vault HTTP API as its record store.
//
// [HTTPRecordStore] implements [store.RecordStore] on top of the /api/vault
// endpoints, so a vault session works the same against a local database and
// a remote server. HTTP status codes are mapped back to the store sentinel
// errors by mapHTTPError so that callers can keep using [errors.Is]
// (e.g. [store.ErrRecordNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import "github.com/MKhiriev/go-pass-vault/internal/store"

// compile-time check
var _ store.RecordStore = (*HTTPRecordStore)(nil)
