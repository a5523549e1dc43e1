// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/doin-client/models"
)

type httpFriendAdapter struct {
	gateway *Gateway
}

// NewHTTPFriendAdapter returns the REST implementation of [FriendAdapter].
func NewHTTPFriendAdapter(gateway *Gateway) FriendAdapter {
	return &httpFriendAdapter{gateway: gateway}
}

func (h *httpFriendAdapter) Friends(ctx context.Context) ([]models.Friendship, error) {
	return h.list(ctx, "/friends")
}

func (h *httpFriendAdapter) FriendRequests(ctx context.Context) ([]models.Friendship, error) {
	return h.list(ctx, "/friends/friend-requests")
}

func (h *httpFriendAdapter) Find(ctx context.Context, username string) ([]models.Friendship, error) {
	return h.list(ctx, "/friends/"+url.PathEscape(username))
}

func (h *httpFriendAdapter) list(ctx context.Context, path string) ([]models.Friendship, error) {
	body, err := h.gateway.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list friends request: %w", err)
	}

	friends, err := decodeList[models.Friendship](body)
	if err != nil {
		return nil, fmt.Errorf("list friends response: %w", err)
	}
	return friends, nil
}

func (h *httpFriendAdapter) Add(ctx context.Context, username string) error {
	if _, err := h.gateway.Post(ctx, "/friends/add/"+url.PathEscape(username), nil); err != nil {
		return fmt.Errorf("add friend request: %w", err)
	}
	return nil
}

func (h *httpFriendAdapter) Confirm(ctx context.Context, username string) error {
	if _, err := h.gateway.Post(ctx, "/friends/confirm/"+url.PathEscape(username), nil); err != nil {
		return fmt.Errorf("confirm friend request: %w", err)
	}
	return nil
}

func (h *httpFriendAdapter) Remove(ctx context.Context, username string) error {
	if _, err := h.gateway.Delete(ctx, "/friends/remove/"+url.PathEscape(username)); err != nil {
		return fmt.Errorf("remove friend request: %w", err)
	}
	return nil
}
