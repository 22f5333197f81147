package crypto

import (
	"strings"
	"testing"
)

const testKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

func TestSealOpenRoundTrip(t *testing.T) {
	if err := InitializeKeys(testKey); err != nil {
		t.Fatalf("init: %v", err)
	}

	sealed, err := Seal("bearer-token-value")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if strings.Contains(sealed, "bearer-token-value") {
		t.Fatalf("sealed blob leaks plaintext")
	}

	got, err := Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got != "bearer-token-value" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestSealProducesFreshNonce(t *testing.T) {
	if err := InitializeKeys(testKey); err != nil {
		t.Fatalf("init: %v", err)
	}

	a, err := Seal("same")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	b, err := Seal("same")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if a == b {
		t.Fatalf("two seals of the same plaintext should differ")
	}
}

func TestOpenRejectsTamperedBlob(t *testing.T) {
	if err := InitializeKeys(testKey); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := Open("bm90IGEgc2VhbGVkIGJsb2IgYXQgYWxsLCBqdXN0IGJ5dGVz"); err == nil {
		t.Fatalf("expected error for tampered blob")
	}
	if _, err := Open("%%%"); err == nil {
		t.Fatalf("expected error for non-base64 input")
	}
	if _, err := Open("c2hvcnQ="); err == nil {
		t.Fatalf("expected error for too-short blob")
	}
}

func TestInitializeKeysValidation(t *testing.T) {
	if err := InitializeKeys(""); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if err := InitializeKeys("dG9vc2hvcnQ="); err == nil {
		t.Fatalf("expected error for short key")
	}
	if err := InitializeKeys("not base64!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}
