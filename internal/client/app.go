// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/internal/config"
	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/internal/notify"
	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/internal/store"
	"github.com/MKhiriev/doin-client/internal/tui"
	"github.com/MKhiriev/doin-client/internal/utils"
	"github.com/MKhiriev/doin-client/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       UI
	logger   *logger.Logger
}

// NewApp wires the client together: storage, the gateway with its request
// hooks, the services and the terminal UI. Failed backend calls are
// published to the process-wide [notify.Default] channel.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	// the gateway needs the session's token, and the session needs the
	// adapters built on the gateway
	var session service.SessionService
	tokens := adapter.TokenSourceFunc(func(ctx context.Context) string {
		if session == nil {
			return ""
		}
		return session.Token(ctx)
	})

	channel := notify.Default()
	gateway := adapter.NewGateway(cfg.Adapter,
		adapter.WithBearerToken(tokens),
		adapter.WithTraceID(utils.NewUUIDGenerator()),
		adapter.WithRequestLogging(log),
		adapter.WithFailureNotifications(channel),
	)

	services := service.NewClientServices(adapter.NewHTTPAdapters(gateway), storages, cfg.App, log)
	session = services.SessionService

	return &App{
		services: services,
		storages: storages,
		ui:       tui.New(services, channel, cfg.App.NotificationTTL, buildInfo, log),
		logger:   log,
	}, nil
}

// Run restores a stored session and blocks in the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.services.SessionService.Restore(ctx); err != nil {
		// a broken local session must not lock the user out
		a.logger.Warn().Err(err).Msg("stored session is unreadable, signing out")
		if clearErr := a.services.SessionService.Logout(ctx); clearErr != nil {
			return fmt.Errorf("reset stored session: %w", clearErr)
		}
	}

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *App) close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Error().Err(err).Msg("failed to close local storage")
	}
}
