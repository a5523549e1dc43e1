// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress     = "http://localhost:8080/api"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultDSN             = "doin.db"
	DefaultPageSize        = 10
	DefaultNotificationTTL = 10 * time.Second
	DefaultLogLevel        = "info"
)

// applyDefaults fills every field no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.App.PageSize == 0 {
		cfg.App.PageSize = DefaultPageSize
	}
	if cfg.App.NotificationTTL == 0 {
		cfg.App.NotificationTTL = DefaultNotificationTTL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
