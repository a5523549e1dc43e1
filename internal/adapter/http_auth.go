// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/doin-client/internal/utils"
	"github.com/MKhiriev/doin-client/models"
)

type httpAuthAdapter struct {
	gateway *Gateway
}

// NewHTTPAuthAdapter returns the REST implementation of [AuthAdapter].
// Its requests never carry the session token.
func NewHTTPAuthAdapter(gateway *Gateway) AuthAdapter {
	return &httpAuthAdapter{gateway: gateway}
}

func (h *httpAuthAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	body, err := h.gateway.Post(utils.WithoutAuth(ctx), "/login", credentials)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	token, err := decodeToken(body)
	if err != nil {
		return "", fmt.Errorf("login response: %w", err)
	}
	return token, nil
}

func (h *httpAuthAdapter) Register(ctx context.Context, data models.RegistrationData) error {
	if _, err := h.gateway.Post(utils.WithoutAuth(ctx), "/register", data); err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return nil
}

func (h *httpAuthAdapter) ForgotPassword(ctx context.Context, data models.ForgotPasswordData) error {
	if _, err := h.gateway.Post(utils.WithoutAuth(ctx), "/forgot-password", data); err != nil {
		return fmt.Errorf("forgot password request: %w", err)
	}
	return nil
}

func (h *httpAuthAdapter) ValidateToken(ctx context.Context, token string) (models.ValidateResult, error) {
	body, err := h.gateway.Post(utils.WithoutAuth(ctx), "/validateToken", models.TokenRequest{Token: token})
	if err != nil {
		return models.ValidateResult{}, fmt.Errorf("validate token request: %w", err)
	}

	result, err := decodeValidateResult(body)
	if err != nil {
		return models.ValidateResult{}, fmt.Errorf("validate token response: %w", err)
	}
	return result, nil
}
