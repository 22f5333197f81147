package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := GenerateSessionToken("sess-1", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseSessionToken(tok, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != "sess-1" {
		t.Fatalf("session id = %q", claims.SessionID)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	tok, err := GenerateSessionToken("sess-1", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseSessionToken(tok, "other"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	tok, err := GenerateSessionToken("sess-1", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseSessionToken(tok, "secret"); err == nil {
		t.Fatalf("expected error for expired token")
	}
}
