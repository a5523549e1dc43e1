// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/doin-client/models"
)

// SessionService owns the session token and the signed-in user's profile.
type SessionService interface {
	// Login exchanges credentials for a token, fetches the profile with
	// that token, persists both in one transaction and only then publishes
	// the profile. A failure leaves the previous session untouched.
	// Returns [ErrInvalidCredentials] on 401 and [ErrUnexpected] otherwise.
	Login(ctx context.Context, credentials models.Credentials) (models.UserProfile, error)

	// Register validates data locally and, if valid, creates the account.
	// It does not sign the user in. Returns [ErrUsernameTaken] on 400.
	Register(ctx context.Context, data models.RegistrationData) error

	// ForgotPassword validates data locally and resets the password.
	// Returns [ErrBadAnswer] on 400.
	ForgotPassword(ctx context.Context, data models.ForgotPasswordData) error

	// Logout clears the session from memory and storage and publishes a nil
	// profile. Calling it without a session is not an error.
	Logout(ctx context.Context) error

	// Token returns the in-memory token, falling back to storage. Empty
	// means there is no session.
	Token(ctx context.Context) string

	// IsExpired decodes token locally. Unparseable tokens and tokens
	// without exp count as expired.
	IsExpired(token string) bool

	// ValidateToken asks the backend about token. Failures of the call
	// itself yield an invalid result; it never returns an error.
	ValidateToken(ctx context.Context, token string) models.ValidateResult

	// Restore loads a stored session at startup and publishes its profile.
	Restore(ctx context.Context) error

	// RefreshProfile re-fetches the signed-in user's profile and stores it.
	RefreshProfile(ctx context.Context) (models.UserProfile, error)

	// CurrentUser returns the published profile, nil when signed out.
	CurrentUser() *models.UserProfile

	// Subscribe calls fn with the current profile and on every change.
	Subscribe(fn func(*models.UserProfile)) (unsubscribe func())

	// MarkRejected records that the backend refused token.
	MarkRejected(token string)

	// IsRejected reports whether token was refused since the last login or
	// logout.
	IsRejected(token string) bool
}

// EventService exposes the event listings and actions.
type EventService interface {
	// Feed pages through GET /events.
	Feed() *Pager[models.Event]
	// Discover pages through the public events.
	Discover() *Pager[models.Event]
	// UserEvents pages through the events created by userID.
	UserEvents(userID int64) *Pager[models.Event]

	Upcoming(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	Create(ctx context.Context, event models.Event) (models.Event, error)
	// Join adds the signed-in user to the event.
	Join(ctx context.Context, eventID int64) error
	AddImage(ctx context.Context, eventID int64, file models.FileUpload, progress func(models.UploadProgress)) error
}

// FriendService manages friendships of the signed-in user.
type FriendService interface {
	Friends(ctx context.Context) ([]models.Friendship, error)
	Requests(ctx context.Context) ([]models.Friendship, error)
	Lookup(ctx context.Context, username string) ([]models.Friendship, error)
	Add(ctx context.Context, username string) error
	Confirm(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
}

// ProfileService reads user profiles and changes the signed-in user's
// avatar.
type ProfileService interface {
	GetByID(ctx context.Context, id int64) (models.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (models.UserProfile, error)
	// UploadProfileImage uploads file, then refreshes the session profile
	// and returns it.
	UploadProfileImage(ctx context.Context, file models.FileUpload, progress func(models.UploadProgress)) (models.UserProfile, error)
	// Image returns the decoded bytes of an image.
	Image(ctx context.Context, id int64) ([]byte, error)
}
