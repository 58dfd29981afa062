// Package http implements the HTTP transport of the vault record store.
//
// It exposes route wiring, request handlers and middleware. Requests pass
// trace id, access logging, authentication and per-identity rate limiting
// before they reach the service layer. Record bodies are opaque envelopes;
// nothing in this package can decrypt them.
package http
