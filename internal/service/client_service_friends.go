// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/internal/validators"
	"github.com/MKhiriev/doin-client/models"
)

type friendService struct {
	friends adapter.FriendAdapter
}

func NewFriendService(friends adapter.FriendAdapter) FriendService {
	return &friendService{friends: friends}
}

func (s *friendService) Friends(ctx context.Context) ([]models.Friendship, error) {
	list, err := s.friends.Friends(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (s *friendService) Requests(ctx context.Context) ([]models.Friendship, error) {
	list, err := s.friends.FriendRequests(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (s *friendService) Lookup(ctx context.Context, username string) ([]models.Friendship, error) {
	username, err := requireUsername(username)
	if err != nil {
		return nil, err
	}

	list, err := s.friends.Find(ctx, username)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (s *friendService) Add(ctx context.Context, username string) error {
	return s.act(ctx, username, "add", s.friends.Add)
}

func (s *friendService) Confirm(ctx context.Context, username string) error {
	return s.act(ctx, username, "confirm", s.friends.Confirm)
}

func (s *friendService) Remove(ctx context.Context, username string) error {
	return s.act(ctx, username, "remove", s.friends.Remove)
}

func (s *friendService) act(ctx context.Context, username, action string, call func(context.Context, string) error) error {
	username, err := requireUsername(username)
	if err != nil {
		return err
	}

	if err = call(ctx, username); err != nil {
		return mapAdapterError(fmt.Errorf("%s friend %q: %w", action, username, err))
	}
	return nil
}

func requireUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", &validators.ValidationError{Field: validators.FieldUsername, Err: validators.ErrRequiredField}
	}
	return username, nil
}
