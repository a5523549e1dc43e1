// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/doin-client/internal/service"
	"github.com/MKhiriev/doin-client/internal/validators"
	tea "github.com/charmbracelet/bubbletea"
)

var knownErrors = []error{
	service.ErrInvalidCredentials,
	service.ErrUsernameTaken,
	service.ErrBadAnswer,
	service.ErrNotAuthenticated,
}

// errorText turns a service error into the line shown on a page.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}

	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is unavailable or the server is down"
	}

	return err.Error()
}

// reauthenticate sends the user back through the home guard when the
// backend refused the session; the guard then confirms the refusal and
// redirects to the login screen.
func reauthenticate(err error) tea.Cmd {
	if errors.Is(err, service.ErrNotAuthenticated) {
		return navigate(routeHome, nil)
	}
	return nil
}
