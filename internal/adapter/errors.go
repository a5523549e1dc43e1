// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors. Every failed call returns one of them wrapped with the
// response body or the underlying cause, so callers match with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	// ErrUnexpectedStatus covers non-2xx codes without a dedicated sentinel.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrNetwork is returned when no HTTP response was received at all.
	ErrNetwork = errors.New("network failure")
	// ErrDecode is returned when a 2xx body does not have the expected shape.
	ErrDecode = errors.New("malformed response")
)

// StatusError carries the HTTP status of a failed call next to the sentinel
// it maps to.
type StatusError struct {
	Status int
	Body   string
	Err    error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Body
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
