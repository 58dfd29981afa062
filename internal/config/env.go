// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_, SERVER_, ADAPTER_ and CLIENT_
// variables. When several variables fail to parse, the message carries
// their number.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) && len(agg.Errors) > 1 {
		return fmt.Errorf("error getting env configs (%d variables): %w", len(agg.Errors), err)
	}

	return fmt.Errorf("error getting env configs: %w", err)
}
