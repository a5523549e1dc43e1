// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the doin client. [RootModel]
// routes between the screens, consults the route guards before each
// navigation and shows the notification banner at the top of every page.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/doin-client/internal/guard"
	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/internal/notify"
	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services  *service.ClientServices
	channel   *notify.Channel
	ttl       time.Duration
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New builds the UI on top of services. Failed backend calls published to
// channel are shown in the banner for ttl.
func New(services *service.ClientServices, channel *notify.Channel, ttl time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		channel:   channel,
		ttl:       ttl,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run shows the UI until the user quits. A restored session starts on the
// home screen, otherwise on the menu.
func (t *TUI) Run(ctx context.Context) error {
	changed := make(chan struct{}, 1)
	banner := notify.NewBanner(t.channel, t.ttl, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer banner.Close()

	start := routeMenu
	if t.services.SessionService.CurrentUser() != nil {
		start = routeHome
	}

	root := t.newRoot(ctx, start).WithBanner(banner, changed).WithBuildInfo(t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, start string) RootModel {
	s := t.services
	pages := map[string]tea.Model{
		routeMenu:     NewMenuModel(),
		routeLogin:    NewLoginModel(ctx, s.SessionService),
		routeRegister: NewRegisterModel(ctx, s.SessionService),
		routeForgot:   NewForgotModel(ctx, s.SessionService),
		routeHome:     NewFeedModel(ctx, s.EventService),
		routeDiscover: NewDiscoverModel(ctx, s.EventService),
		routeFriends:  NewFriendsModel(ctx, s.FriendService),
		routeProfile:  NewProfileModel(ctx, s.SessionService, s.ProfileService, s.EventService),
		routeEvent:    NewEventDetailModel(ctx, s.EventService, s.SessionService),
	}

	return NewRootModel(ctx, pages, Guards(s.SessionService, t.logger), start)
}

// Guards assigns the anonymous-only guard to the sign-in screens and the
// authenticated-only guard to everything behind them.
func Guards(session guard.Session, log *logger.Logger) map[string]guard.Guard {
	anonymous := guard.NewAnonymous(session)
	authenticated := guard.NewAuthenticated(session, log)

	return map[string]guard.Guard{
		routeMenu:     anonymous,
		routeLogin:    anonymous,
		routeRegister: anonymous,
		routeForgot:   anonymous,
		routeHome:     authenticated,
		routeDiscover: authenticated,
		routeFriends:  authenticated,
		routeProfile:  authenticated,
		routeEvent:    authenticated,
	}
}
