// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/models"
)

type eventService struct {
	events   adapter.EventAdapter
	session  SessionService
	pageSize int
	logger   *logger.Logger
}

func NewEventService(events adapter.EventAdapter, session SessionService, pageSize int, log *logger.Logger) EventService {
	return &eventService{
		events:   events,
		session:  session,
		pageSize: pageSize,
		logger:   log,
	}
}

func (s *eventService) Feed() *Pager[models.Event] {
	return NewPager[models.Event](s.pageSize, s.events.List)
}

func (s *eventService) Discover() *Pager[models.Event] {
	return NewPager[models.Event](s.pageSize, s.events.ListPublic)
}

func (s *eventService) UserEvents(userID int64) *Pager[models.Event] {
	return NewPager[models.Event](s.pageSize, func(ctx context.Context, page models.PageRequest) (models.Page[models.Event], error) {
		return s.events.ListByUser(ctx, userID, page)
	})
}

func (s *eventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.Upcoming(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (models.Event, error) {
	event, err := s.events.Get(ctx, id)
	if err != nil {
		return models.Event{}, mapAdapterError(err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, event models.Event) (models.Event, error) {
	created, err := s.events.Create(ctx, event)
	if err != nil {
		return models.Event{}, mapAdapterError(err)
	}
	s.logger.Debug().Int64("event_id", created.ID).Msg("event created")
	return created, nil
}

func (s *eventService) Join(ctx context.Context, eventID int64) error {
	user := s.session.CurrentUser()
	if user == nil {
		return ErrNotAuthenticated
	}

	if err := s.events.Join(ctx, eventID, user.ID); err != nil {
		return mapAdapterError(fmt.Errorf("join event %d: %w", eventID, err))
	}
	return nil
}

func (s *eventService) AddImage(ctx context.Context, eventID int64, file models.FileUpload, progress func(models.UploadProgress)) error {
	if err := s.events.AddImage(ctx, eventID, file, progress); err != nil {
		return mapAdapterError(fmt.Errorf("add image to event %d: %w", eventID, err))
	}
	return nil
}
