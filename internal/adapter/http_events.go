// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/doin-client/models"
)

type httpEventAdapter struct {
	gateway *Gateway
}

// NewHTTPEventAdapter returns the REST implementation of [EventAdapter].
func NewHTTPEventAdapter(gateway *Gateway) EventAdapter {
	return &httpEventAdapter{gateway: gateway}
}

func (h *httpEventAdapter) List(ctx context.Context, page models.PageRequest) (models.Page[models.Event], error) {
	return h.page(ctx, "/events", page)
}

func (h *httpEventAdapter) ListPublic(ctx context.Context, page models.PageRequest) (models.Page[models.Event], error) {
	return h.page(ctx, "/events/public", page)
}

func (h *httpEventAdapter) ListByUser(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Event], error) {
	return h.page(ctx, "/events/users/"+strconv.FormatInt(userID, 10), page)
}

func (h *httpEventAdapter) page(ctx context.Context, path string, page models.PageRequest) (models.Page[models.Event], error) {
	body, err := h.gateway.Get(ctx, path, pageQuery(page))
	if err != nil {
		return models.Page[models.Event]{}, fmt.Errorf("list events request: %w", err)
	}

	result, err := decodePage[models.Event](body)
	if err != nil {
		return models.Page[models.Event]{}, fmt.Errorf("list events response: %w", err)
	}
	return result, nil
}

func (h *httpEventAdapter) Upcoming(ctx context.Context) ([]models.Event, error) {
	body, err := h.gateway.Get(ctx, "/events/upcoming", nil)
	if err != nil {
		return nil, fmt.Errorf("upcoming events request: %w", err)
	}

	events, err := decodeList[models.Event](body)
	if err != nil {
		return nil, fmt.Errorf("upcoming events response: %w", err)
	}
	return events, nil
}

func (h *httpEventAdapter) Get(ctx context.Context, id int64) (models.Event, error) {
	body, err := h.gateway.Get(ctx, eventPath(id), nil)
	if err != nil {
		return models.Event{}, fmt.Errorf("get event request: %w", err)
	}

	event, err := decodeJSON[models.Event](body)
	if err != nil {
		return models.Event{}, fmt.Errorf("get event response: %w", err)
	}
	return event, nil
}

func (h *httpEventAdapter) Create(ctx context.Context, event models.Event) (models.Event, error) {
	body, err := h.gateway.Post(ctx, "/events", event)
	if err != nil {
		return models.Event{}, fmt.Errorf("create event request: %w", err)
	}

	created, err := decodeJSON[models.Event](body)
	if err != nil {
		return models.Event{}, fmt.Errorf("create event response: %w", err)
	}
	return created, nil
}

func (h *httpEventAdapter) Join(ctx context.Context, eventID, userID int64) error {
	req := h.gateway.NewRequest(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10))

	if _, err := h.gateway.Execute(req, http.MethodPost, eventPath(eventID)+"/join"); err != nil {
		return fmt.Errorf("join event request: %w", err)
	}
	return nil
}

func (h *httpEventAdapter) AddImage(ctx context.Context, eventID int64, file models.FileUpload, progress func(models.UploadProgress)) error {
	if _, err := h.gateway.Upload(ctx, http.MethodPost, eventPath(eventID)+"/images", file, progress); err != nil {
		return fmt.Errorf("add event image request: %w", err)
	}
	return nil
}

func eventPath(id int64) string {
	return "/events/" + strconv.FormatInt(id, 10)
}

func pageQuery(page models.PageRequest) url.Values {
	q := url.Values{"page": {strconv.Itoa(max(page.Page, 0))}}
	if page.Size > 0 {
		q.Set("size", strconv.Itoa(page.Size))
	}
	return q
}
