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

type httpUserAdapter struct {
	gateway *Gateway
}

// NewHTTPUserAdapter returns the REST implementation of [UserAdapter].
func NewHTTPUserAdapter(gateway *Gateway) UserAdapter {
	return &httpUserAdapter{gateway: gateway}
}

func (h *httpUserAdapter) GetByUsername(ctx context.Context, username string) (models.UserProfile, error) {
	return h.get(ctx, url.Values{"username": {username}})
}

func (h *httpUserAdapter) GetByID(ctx context.Context, id int64) (models.UserProfile, error) {
	return h.get(ctx, url.Values{"id": {strconv.FormatInt(id, 10)}})
}

func (h *httpUserAdapter) get(ctx context.Context, query url.Values) (models.UserProfile, error) {
	body, err := h.gateway.Get(ctx, "/users", query)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get user request: %w", err)
	}

	user, err := decodeJSON[models.UserProfile](body)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get user response: %w", err)
	}
	return user, nil
}

func (h *httpUserAdapter) UpdateProfileImage(ctx context.Context, file models.FileUpload, progress func(models.UploadProgress)) error {
	if _, err := h.gateway.Upload(ctx, http.MethodPut, "/users/update-profile-img", file, progress); err != nil {
		return fmt.Errorf("update profile image request: %w", err)
	}
	return nil
}
