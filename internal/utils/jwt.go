package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token cannot be decoded locally.
var ErrMalformedToken = errors.New("malformed token")

// TokenClaims are the claims the client reads from a session token without
// verifying its signature. Verification belongs to the backend.
type TokenClaims struct {
	// Subject (sub) is the username the token was issued for.
	Subject string
	// Username is the custom "username" claim. Falls back to Subject.
	Username string
	// Issuer (iss) of the token.
	Issuer string
	// ExpiresAt (exp). Zero when the token carries no expiry.
	ExpiresAt time.Time
}

// ParseTokenClaims decodes tokenString without checking its signature.
//
// Returns [ErrMalformedToken] wrapped with details if the string is not a
// JWT or its claims cannot be read.
//
// Example usage:
//
//	claims, err := utils.ParseTokenClaims(token)
//	if err == nil && claims.ExpiresAt.Before(time.Now()) {
//	    // token expired
//	}
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return TokenClaims{}, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("%w: invalid token claims", ErrMalformedToken)
	}

	var result TokenClaims
	if result.Subject, err = claims.GetSubject(); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if result.Issuer, err = claims.GetIssuer(); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	result.Username, _ = claims["username"].(string)
	if result.Username == "" {
		result.Username = result.Subject
	}

	return result, nil
}

// IsTokenExpired reports whether tokenString is unusable at now: empty,
// undecodable, without an exp claim or with exp at or before now.
func IsTokenExpired(tokenString string, now time.Time) bool {
	claims, err := ParseTokenClaims(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt.IsZero() {
		return true
	}

	return !now.Before(claims.ExpiresAt)
}
