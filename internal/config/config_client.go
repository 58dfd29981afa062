package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the vault API. Empty means the client
	// talks to Storage directly.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token for HTTPAddress.
	Token string
}

// ClientStorage holds the DSN of a directly opened record store.
type ClientStorage struct {
	DSN   string
	Mongo Mongo
}

// ClientSession contains settings of the vault session.
type ClientSession struct {
	// Identity is the owner e-mail used as record scope and key salt.
	Identity string
	// AutoLock is the inactivity period after which the vault locks itself.
	AutoLock time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Session ClientSession
}

// UsesRemoteStore reports whether records live behind the HTTP API.
func (c *ClientConfig) UsesRemoteStore() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DSN:   cfg.Storage.DB.DSN,
			Mongo: cfg.Storage.Mongo,
		},
		Session: ClientSession{
			Identity: cfg.Client.Identity,
			AutoLock: cfg.Client.AutoLock,
		},
	}

	return clientCfg, clientCfg.validate()
}
