// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the doin client and
// the doin REST backend.
//
// A single [Gateway] owns the resty client. Cross-cutting behaviour (bearer
// header, trace id, request logging, failure notifications) is registered on
// it once as [ClientOption] hooks, so every call made by the domain adapters
// in http_*.go passes through the same choke point.
//
// Failed calls surface as the sentinel values in errors.go. Non-2xx
// responses are mapped by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400); transport
// failures wrap [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/doin-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter wraps the anonymous authentication endpoints.
type AuthAdapter interface {
	// Login posts credentials to POST /login and returns the issued token.
	Login(ctx context.Context, credentials models.Credentials) (string, error)
	// Register posts the registration payload to POST /register.
	Register(ctx context.Context, data models.RegistrationData) error
	// ForgotPassword posts the reset payload to POST /forgot-password.
	ForgotPassword(ctx context.Context, data models.ForgotPasswordData) error
	// ValidateToken asks POST /validateToken whether token is still valid.
	ValidateToken(ctx context.Context, token string) (models.ValidateResult, error)
}

// UserAdapter wraps the /users endpoints.
type UserAdapter interface {
	GetByUsername(ctx context.Context, username string) (models.UserProfile, error)
	GetByID(ctx context.Context, id int64) (models.UserProfile, error)
	// UpdateProfileImage uploads file as the current user's avatar.
	// progress, when non-nil, is called as the body is sent.
	UpdateProfileImage(ctx context.Context, file models.FileUpload, progress func(models.UploadProgress)) error
}

// EventAdapter wraps the /events endpoints.
type EventAdapter interface {
	List(ctx context.Context, page models.PageRequest) (models.Page[models.Event], error)
	ListPublic(ctx context.Context, page models.PageRequest) (models.Page[models.Event], error)
	ListByUser(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Event], error)
	Upcoming(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	Create(ctx context.Context, event models.Event) (models.Event, error)
	Join(ctx context.Context, eventID, userID int64) error
	AddImage(ctx context.Context, eventID int64, file models.FileUpload, progress func(models.UploadProgress)) error
}

// FriendAdapter wraps the /friends endpoints.
type FriendAdapter interface {
	Friends(ctx context.Context) ([]models.Friendship, error)
	FriendRequests(ctx context.Context) ([]models.Friendship, error)
	Find(ctx context.Context, username string) ([]models.Friendship, error)
	Add(ctx context.Context, username string) error
	Confirm(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
}

// ImageAdapter wraps the /images endpoints.
type ImageAdapter interface {
	// Get returns the decoded bytes of the image with the given id.
	Get(ctx context.Context, id int64) ([]byte, error)
}

// TokenSource yields the bearer token for outgoing requests. An empty
// string means "no token".
type TokenSource interface {
	Token(ctx context.Context) string
}

// Notifier receives the user-facing text of every failed call.
type Notifier interface {
	Publish(message string)
}

// IDGenerator produces per-request trace ids.
type IDGenerator interface {
	Generate() string
}

// TokenSourceFunc adapts a plain function to [TokenSource].
type TokenSourceFunc func(ctx context.Context) string

func (f TokenSourceFunc) Token(ctx context.Context) string {
	return f(ctx)
}
