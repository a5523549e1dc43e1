// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Business errors returned by the client services. Transport details stay
// wrapped underneath, so [errors.Is] works for both layers.
var (
	// ErrInvalidCredentials is returned by Login when the backend answers 401.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned by Register when the backend answers 400.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrBadAnswer is returned by ForgotPassword when the backend answers 400.
	ErrBadAnswer = errors.New("username or security answer is incorrect")
	// ErrUnexpected covers every other failure of an auth flow.
	ErrUnexpected = errors.New("unexpected error")
	// ErrNotAuthenticated is returned when an operation needs a signed-in
	// user and there is none, or the backend refused the session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
