// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys,
// HTTP client initialization, JWT token decoding and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key under which a request-scoped bearer token is
// stored. A token placed here takes precedence over the session token for
// the one request carrying the context.
var TokenCtxKey = contextKey("authToken")

// SkipAuthCtxKey marks a request that must go out without an Authorization
// header even when a session token exists.
var SkipAuthCtxKey = contextKey("skipAuth")

// WithToken returns a copy of ctx carrying token for a single request.
//
// Example usage:
//
//	ctx = utils.WithToken(ctx, freshToken)
//	profile, err := users.Me(ctx)
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the request-scoped token.
//
// Returns the token and an ok flag:
//   - ok == true : a non-empty token is stored in ctx
//   - ok == false: value is missing, empty or has an unexpected type
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// WithoutAuth returns a copy of ctx whose requests carry no credentials.
func WithoutAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, SkipAuthCtxKey, true)
}

// IsAuthSkipped reports whether ctx was produced by [WithoutAuth].
func IsAuthSkipped(ctx context.Context) bool {
	skip, _ := ctx.Value(SkipAuthCtxKey).(bool)
	return skip
}
