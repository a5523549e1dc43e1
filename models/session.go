// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StoredSession is what the durable session storage holds between runs.
// Profile is nil when no profile was stored next to the token.
type StoredSession struct {
	Token   string
	Profile *UserProfile
}
