// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the denormalized snapshot of the signed-in user that is kept
// next to the session token. It is refreshed on login and after the user
// changes their profile picture; other backend-side changes are not tracked.
type UserProfile struct {
	// ID is the backend identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name. It is also the subject of the
	// session token issued for this user.
	Username string `json:"username"`

	// ProfilePicture references the avatar image. Nil when the user has not
	// uploaded one yet.
	ProfilePicture *Image `json:"profilePicture,omitempty"`
}

// Credentials is the transient login payload. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
