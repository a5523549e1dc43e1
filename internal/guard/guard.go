// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides whether a navigation to a screen may proceed.
//
// Both guards share one policy: a token that is missing, expired, malformed
// or refused by the backend means the user is anonymous. Only the
// [Authenticated] guard contacts the backend; when the backend refuses a
// token the guard records it with [Session.MarkRejected], so the [Anonymous]
// guard reaches the same verdict without a second call. Guards never touch
// durable storage.
//
// Expiry is checked locally first. A token the client cannot decode as a
// JWT with an "exp" claim counts as expired and is refused without asking
// the backend, so an opaque token never passes the [Authenticated] guard.
package guard

import (
	"context"

	"github.com/MKhiriev/doin-client/models"
)

//go:generate mockgen -source=guard.go -destination=../mock/guard_mock.go -package=mock

// Landing routes used as redirect targets.
const (
	RouteLogin = "login"
	RouteHome  = "home"
)

// Navigation describes a requested screen change.
type Navigation struct {
	From string
	To   string
}

// Decision is the outcome of a guard. When Allowed is false, Redirect names
// the route to show instead; it may be empty, meaning "stay".
type Decision struct {
	Allowed  bool
	Redirect string
}

// Allow is the decision letting a navigation through.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses a navigation and redirects to route.
func Deny(route string) Decision {
	return Decision{Redirect: route}
}

// Guard is consulted before the router activates a screen.
type Guard interface {
	CanActivate(ctx context.Context, nav Navigation) Decision
}

// Session is the part of the session manager the guards rely on.
type Session interface {
	Token(ctx context.Context) string
	IsExpired(token string) bool
	ValidateToken(ctx context.Context, token string) models.ValidateResult
	MarkRejected(token string)
	IsRejected(token string) bool
}
