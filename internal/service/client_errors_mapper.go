// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/doin-client/internal/adapter"
)

// mapLoginError translates a failed login call.
func mapLoginError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return fmt.Errorf("%w: %w", ErrUnexpected, err)
}

// mapFormError translates a failed register or forgot-password call; a 400
// becomes onBadRequest.
func mapFormError(err error, onBadRequest error) error {
	if errors.Is(err, adapter.ErrBadRequest) {
		return fmt.Errorf("%w: %w", onBadRequest, err)
	}
	return fmt.Errorf("%w: %w", ErrUnexpected, err)
}

// mapAdapterError translates the adapter's transport error for the domain
// services. Refused sessions become [ErrNotAuthenticated]; everything else
// is returned as is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden) {
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	return err
}
