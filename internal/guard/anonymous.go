// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import "context"

// Anonymous admits only users without a usable session. It decides locally
// and sends users who still hold a live token to the home screen.
type Anonymous struct {
	session Session
}

func NewAnonymous(session Session) *Anonymous {
	return &Anonymous{session: session}
}

func (g *Anonymous) CanActivate(ctx context.Context, _ Navigation) Decision {
	token := g.session.Token(ctx)
	if token == "" || g.session.IsExpired(token) || g.session.IsRejected(token) {
		return Allow()
	}
	return Deny(RouteHome)
}
