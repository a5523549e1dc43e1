// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultPageSize, cfg.App.PageSize)
	assert.Equal(t, DefaultNotificationTTL, cfg.App.NotificationTTL)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1/api"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2/api"}, App: App{PageSize: 5}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "http://env:1/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5, cfg.App.PageSize)
}

func TestConfigBuilder_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigBuilder_JSONFromFlags(t *testing.T) {
	path := writeJSON(t, `{"app": {"page_size": 42}, "adapter": {"request_timeout": "7s"}}`)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg, err := newConfigBuilder().
		withFlags(fs, []string{"-c", path, "-page-size", "3"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.App.PageSize, "flags win over the file")
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
}

func TestConfigBuilder_MissingJSON(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := &StructuredConfig{}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "ok", mutate: func(*StructuredConfig) {}},
		{name: "bad address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "ftp://x" }, want: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = -1 }, want: ErrInvalidAdapterConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "zero page size", mutate: func(c *StructuredConfig) { c.App.PageSize = -3 }, want: ErrInvalidAppConfigs},
		{name: "bad log level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_NormalizesAddress(t *testing.T) {
	cfg := &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:9999/api/"}}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.Equal(t, "http://localhost:9999/api", cfg.Adapter.HTTPAddress)
}

func TestNewClientConfig(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	cc := newClientConfig(cfg)

	assert.Equal(t, cfg.Adapter.HTTPAddress, cc.Adapter.HTTPAddress)
	assert.Equal(t, cfg.Storage.DB.DSN, cc.Storage.DSN)
	assert.Equal(t, cfg.App.PageSize, cc.App.PageSize)
}
