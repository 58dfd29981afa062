// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit < 0 || (cfg.Server.RateLimit > 0 && cfg.Server.RateBurst < 1) {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !strings.Contains(cfg.Session.Identity, "@") || cfg.Session.AutoLock < 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.UsesRemoteStore() {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
		if cfg.Adapter.Token == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
		return nil
	}

	// a local vault kept only in memory would be lost on exit
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	return nil
}
