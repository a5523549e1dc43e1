// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/models"
)

type profileService struct {
	users   adapter.UserAdapter
	images  adapter.ImageAdapter
	session SessionService
}

func NewProfileService(users adapter.UserAdapter, images adapter.ImageAdapter, session SessionService) ProfileService {
	return &profileService{users: users, images: images, session: session}
}

func (s *profileService) GetByID(ctx context.Context, id int64) (models.UserProfile, error) {
	profile, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(err)
	}
	return profile, nil
}

func (s *profileService) GetByUsername(ctx context.Context, username string) (models.UserProfile, error) {
	username, err := requireUsername(username)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(err)
	}
	return profile, nil
}

func (s *profileService) UploadProfileImage(ctx context.Context, file models.FileUpload, progress func(models.UploadProgress)) (models.UserProfile, error) {
	if s.session.CurrentUser() == nil {
		return models.UserProfile{}, ErrNotAuthenticated
	}

	if err := s.users.UpdateProfileImage(ctx, file, progress); err != nil {
		return models.UserProfile{}, mapAdapterError(fmt.Errorf("upload profile image: %w", err))
	}

	return s.session.RefreshProfile(ctx)
}

func (s *profileService) Image(ctx context.Context, id int64) ([]byte, error) {
	data, err := s.images.Get(ctx, id)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return data, nil
}
