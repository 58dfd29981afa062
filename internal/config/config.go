// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is unset.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the record store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, timeouts and rate limits of the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote API settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds settings of the interactive client session.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-pass-vault"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"720h"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the record store backends. The
// backend is selected by the scheme of DB.DSN.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Mongo Mongo `envPrefix:"MONGO_"`
}

// DB holds the connection string of the record store.
type DB struct {
	// DSN selects the backend:
	//   ""  or ":memory:"                 in-memory store
	//   postgres://... / postgresql://... PostgreSQL
	//   mongodb://... / mongodb+srv://... MongoDB
	//   sqlite://path or a *.db file path  SQLite
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mongo holds MongoDB specific names. Only used with a mongodb:// DSN.
type Mongo struct {
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE" envDefault:"vault"`
	// Env: STORAGE_MONGO_COLLECTION
	Collection string `env:"COLLECTION" envDefault:"vault_records"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// RateLimit is the sustained number of requests per second allowed per
	// identity. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"10"`

	// RateBurst is the bucket size of the per-identity limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST" envDefault:"30"`
}

// Adapter holds the settings of the client's remote record store.
type Adapter struct {
	// HTTPAddress is the base URL of the vault API (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Token is the bearer token issued for the client identity.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Client holds settings of the interactive client.
type Client struct {
	// Identity is the owner e-mail. It scopes the records and salts the key.
	// Env: CLIENT_IDENTITY
	Identity string `env:"IDENTITY"`

	// AutoLock locks the vault after this much inactivity. Zero disables it.
	// Env: CLIENT_AUTO_LOCK
	AutoLock time.Duration `env:"AUTO_LOCK" envDefault:"5m"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
