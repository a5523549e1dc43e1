// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	default:
		sentinel = fmt.Errorf("%w: http %d", ErrUnexpectedStatus, resp.StatusCode())
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
	}

	return &StatusError{Status: resp.StatusCode(), Body: body, Err: sentinel}
}

// failureMessage renders the user-facing text for a failed response:
// "Error <status>: <message>", where message is the backend's "message"
// field when present and the standard status text otherwise.
func failureMessage(resp *resty.Response) string {
	msg := ""
	if body := resp.Body(); gjson.ValidBytes(body) {
		msg = strings.TrimSpace(gjson.GetBytes(body, "message").String())
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	if msg == "" {
		msg = "request failed"
	}

	return fmt.Sprintf("Error %d: %s", resp.StatusCode(), msg)
}

// networkFailureMessage renders the user-facing text for a call that got no
// response.
func networkFailureMessage(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
