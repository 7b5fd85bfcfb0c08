// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Synthesizer.APIKey == "" || cfg.Synthesizer.Endpoint == "" {
		return fmt.Errorf("%w: NANO_BANANA_API_KEY and endpoint are required", ErrInvalidSynthesizerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: DATABASE_URL is required", ErrInvalidStorageConfigs)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenExpirySeconds <= 0 {
		return fmt.Errorf("%w: JWT_SECRET and a positive JWT_EXPIRY_SECONDS are required", ErrInvalidAuthConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	return nil
}
