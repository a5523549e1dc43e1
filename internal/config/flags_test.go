// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full url", input: "http://localhost:8080/api", want: "http://localhost:8080/api"},
		{name: "https", input: "https://doin.example.com/api/", want: "https://doin.example.com/api"},
		{name: "no scheme", input: "localhost:8080/api", want: "http://localhost:8080/api"},
		{name: "empty", input: "", wantErr: true},
		{name: "bad scheme", input: "ftp://host/api", wantErr: true},
		{name: "no host", input: "http:///api", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BaseURL
			err := b.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, b.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args := []string{
		"-a", "http://10.0.0.1:9000/api",
		"-d", "session.db",
		"-config", "cfg.json",
		"-request-timeout", "3s",
		"-page-size", "20",
		"-notification-ttl", "1m",
		"-log-level", "warn",
	}

	cfg, err := parseFlags(fs, args)

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.1:9000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 20, cfg.App.PageSize)
	assert.Equal(t, time.Minute, cfg.App.NotificationTTL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	_, err := parseFlags(fs, []string{"-a", "ftp://x"})

	assert.Error(t, err)
}
