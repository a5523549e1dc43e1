package utils

import (
	"context"
	"testing"
)

func TestWithToken_RoundTrip(t *testing.T) {
	ctx := WithToken(context.Background(), "tok")

	got, ok := GetTokenFromContext(ctx)
	if !ok || got != "tok" {
		t.Fatalf("expected tok, got %q (ok=%v)", got, ok)
	}
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	if _, ok := GetTokenFromContext(context.Background()); ok {
		t.Error("expected ok == false for empty context")
	}
	if _, ok := GetTokenFromContext(WithToken(context.Background(), "")); ok {
		t.Error("expected ok == false for empty token")
	}
}

func TestWithoutAuth(t *testing.T) {
	if IsAuthSkipped(context.Background()) {
		t.Error("plain context must not skip auth")
	}
	if !IsAuthSkipped(WithoutAuth(context.Background())) {
		t.Error("expected auth to be skipped")
	}
}

func TestContextKey_String(t *testing.T) {
	if TokenCtxKey.String() != "authToken" {
		t.Errorf("unexpected key name %q", TokenCtxKey.String())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
