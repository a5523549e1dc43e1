// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds the backend base URL. It implements the flag.Value interface.
type BaseURL struct {
	u *url.URL
}

// parseFlags parses all configuration flags from args using fs.
//
// Flags:
//
//	-a backend base URL, e.g. http://localhost:8080/api
//	-d session database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-page-size events per page
//	-notification-ttl how long an error banner stays visible
//	-log-level zerolog level name
//	-log-file log file path
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var address BaseURL
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pageSize int
	var notificationTTL time.Duration
	var logLevel, logFile string

	fs.Var(&address, "a", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "Events per page")
	fs.DurationVar(&notificationTTL, "notification-ttl", 0, "Error banner lifetime (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PageSize:        pageSize,
			NotificationTTL: notificationTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the canonical URL, or an empty string when unset.
func (b *BaseURL) String() string {
	if b == nil || b.u == nil {
		return ""
	}

	return strings.TrimRight(b.u.String(), "/")
}

// Set parses s as an absolute http(s) URL. A missing scheme defaults to http.
func (b *BaseURL) Set(s string) error {
	u, err := normalizeBaseURL(s)
	if err != nil {
		return err
	}

	b.u = u
	return nil
}

func normalizeBaseURL(s string) (*url.URL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty address")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("address has no host")
	}

	return u, nil
}
