// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// doin client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds UI-level settings such as page size and how long error
	// notifications stay visible.
	App App `envPrefix:"APP_"`

	// Storage holds the settings of the durable session storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour settings.
type App struct {
	// PageSize is the number of events requested per "load more" step.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// NotificationTTL is how long an error banner stays visible.
	// Env: APP_NOTIFICATION_TTL
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`
}

// Storage groups the configuration of the client storage backends.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps the
// session between runs.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "doin.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the backend transport.
type Adapter struct {
	// HTTPAddress is the backend base URL including the API prefix
	// (e.g. "http://localhost:8080/api"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single backend call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		build()
}
