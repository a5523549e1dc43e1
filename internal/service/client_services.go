// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/internal/config"
	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/internal/store"
)

type ClientServices struct {
	SessionService SessionService
	EventService   EventService
	FriendService  FriendService
	ProfileService ProfileService
}

func NewClientServices(adapters *adapter.Adapters, storages *store.ClientStorages, cfg config.ClientApp, log *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(adapters.Auth, adapters.Users, storages.SessionRepository, log)

	return &ClientServices{
		SessionService: sessionSvc,
		EventService:   NewEventService(adapters.Events, sessionSvc, cfg.PageSize, log),
		FriendService:  NewFriendService(adapters.Friends),
		ProfileService: NewProfileService(adapters.Users, adapters.Images, sessionSvc),
	}
}
