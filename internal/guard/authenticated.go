// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"

	"github.com/MKhiriev/doin-client/internal/logger"
)

// Authenticated lets a navigation through only when the backend confirms
// the current token. It fails closed: a validation call that could not be
// made counts as a refusal.
type Authenticated struct {
	session Session
	logger  *logger.Logger
}

func NewAuthenticated(session Session, log *logger.Logger) *Authenticated {
	return &Authenticated{session: session, logger: log}
}

func (g *Authenticated) CanActivate(ctx context.Context, nav Navigation) Decision {
	token := g.session.Token(ctx)
	if token == "" {
		return Deny(RouteLogin)
	}

	if g.session.IsExpired(token) || g.session.IsRejected(token) {
		g.logger.Debug().Str("to", nav.To).Msg("token expired or rejected")
		return Deny(RouteLogin)
	}

	result := g.session.ValidateToken(ctx, token)
	if !result.Valid {
		g.session.MarkRejected(token)
		g.logger.Info().Str("to", nav.To).Str("reason", result.Message).Msg("backend refused token")
		return Deny(RouteLogin)
	}

	return Allow()
}
