// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/doin-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the session key-value table.
const (
	KeyAuthToken   = "authToken"
	KeyCurrentUser = "currentUser"
)

// SessionRepository is the durable storage of the client session. Token and
// profile are always written and cleared together.
type SessionRepository interface {
	// Save replaces every stored session key with token and profile in one
	// transaction.
	Save(ctx context.Context, token string, profile models.UserProfile) error
	// Load returns the stored session or [ErrSessionNotFound].
	Load(ctx context.Context) (models.StoredSession, error)
	// Clear removes every stored session key. It is idempotent.
	Clear(ctx context.Context) error
}
