// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	u, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	cfg.Adapter.HTTPAddress = (&BaseURL{u: u}).String()

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.App.PageSize < 1 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.NotificationTTL < 0 {
		return fmt.Errorf("%w: negative notification ttl", ErrInvalidAppConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	return nil
}
