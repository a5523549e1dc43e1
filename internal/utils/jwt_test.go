package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestParseTokenClaims_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signTestToken(t, jwt.MapClaims{
		"sub":      "alice",
		"username": "alice",
		"iss":      "doin",
		"exp":      exp.Unix(),
	})

	claims, err := ParseTokenClaims(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Subject != "alice" || claims.Username != "alice" {
		t.Errorf("unexpected subject/username: %+v", claims)
	}
	if claims.Issuer != "doin" {
		t.Errorf("expected issuer doin, got %s", claims.Issuer)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("expected exp %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestParseTokenClaims_UsernameFallsBackToSubject(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"sub": "bob", "exp": time.Now().Add(time.Hour).Unix()})

	claims, err := ParseTokenClaims(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Username != "bob" {
		t.Errorf("expected bob, got %s", claims.Username)
	}
}

func TestParseTokenClaims_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"garbage", "abc.def.ghi"},
		{"one part", "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokenClaims(tt.token)
			if !errors.Is(err, ErrMalformedToken) {
				t.Errorf("expected ErrMalformedToken, got %v", err)
			}
		})
	}
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"future exp", signTestToken(t, jwt.MapClaims{"sub": "a", "exp": now.Add(time.Hour).Unix()}), false},
		{"past exp", signTestToken(t, jwt.MapClaims{"sub": "a", "exp": now.Add(-time.Minute).Unix()}), true},
		{"no exp", signTestToken(t, jwt.MapClaims{"sub": "a"}), true},
		{"malformed", "not-a-token", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTokenExpired(tt.token, now); got != tt.want {
				t.Errorf("IsTokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
