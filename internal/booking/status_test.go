package booking

import (
	"errors"
	"testing"
)

func TestTransitionFromPending(t *testing.T) {
	for _, to := range []Status{StatusConfirmed, StatusCancelled} {
		got, err := StatusPending.Transition(to)
		if err != nil {
			t.Fatalf("pending -> %s: unexpected error: %v", to, err)
		}
		if got != to {
			t.Fatalf("pending -> %s: got %s", to, got)
		}
	}
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	cases := []struct{ from, to Status }{
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusPending, StatusPending},
	}
	for _, tc := range cases {
		if _, err := tc.from.Transition(tc.to); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("confirmed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got)
	}

	if _, err := ParseStatus("approved"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Fatalf("expected error for empty status")
	}
}

func TestIsPendingAndTerminal(t *testing.T) {
	if !StatusPending.IsPending() {
		t.Fatalf("pending should be pending")
	}
	if StatusPending.IsTerminal() {
		t.Fatalf("pending should not be terminal")
	}
	if !StatusConfirmed.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Fatalf("confirmed and cancelled should be terminal")
	}
}

func TestTitle(t *testing.T) {
	if got := StatusPending.Title(); got != "Pending" {
		t.Fatalf("expected Pending, got %q", got)
	}
	if got := Status("").Title(); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}
