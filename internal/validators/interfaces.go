// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the client-side form checks that run before a
// request is sent to the backend.
//
// A failed check is reported as a [*ValidationError] naming the offending
// field; it unwraps to a sentinel such as [ErrPasswordsMismatch]. Validation
// errors are resolved locally and never reach the network.
package validators

import "context"

// Validator validates a form payload. Implementations may restrict the
// required-field checks to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
