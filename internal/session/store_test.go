package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resortfront/internal/config"
	"resortfront/internal/upstream"
	"resortfront/internal/utils/crypto"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// 32 zero-padded test bytes, base64 encoded.
const testSealKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

func newTestStore(t *testing.T, loginHandler http.HandlerFunc) (*Store, *miniredis.Miniredis) {
	t.Helper()

	if err := crypto.InitializeKeys(testSealKey); err != nil {
		t.Fatalf("init keys: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	srv := httptest.NewServer(loginHandler)
	t.Cleanup(srv.Close)

	up := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL})
	return NewStore(rdb, up, time.Hour), mr
}

func okLogin(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(upstream.LoginResult{
			Token: "upstream-token",
			User:  upstream.User{ID: "u1", Email: "user@example.com", Role: role},
			Menus: []upstream.MenuEntry{{Label: "Resorts", Path: "/resorts"}},
		})
	}
}

func TestAuthenticateAndGet(t *testing.T) {
	store, _ := newTestStore(t, okLogin("user"))
	ctx := context.Background()

	sess, err := store.Authenticate(ctx, "user@example.com", "pw")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if sess.Identity.Role != RoleUser {
		t.Fatalf("role = %s", sess.Identity.Role)
	}
	if sess.Token != "upstream-token" {
		t.Fatalf("token = %q", sess.Token)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Identity.Email != "user@example.com" {
		t.Fatalf("email = %q", got.Identity.Email)
	}
	if got.Token != "upstream-token" {
		t.Fatalf("unsealed token = %q", got.Token)
	}
	if len(got.Menus) != 1 || got.Menus[0].Path != "/resorts" {
		t.Fatalf("menus = %+v", got.Menus)
	}
}

func TestAuthenticateRejectsUnknownRole(t *testing.T) {
	store, _ := newTestStore(t, okLogin("superadmin"))

	if _, err := store.Authenticate(context.Background(), "user@example.com", "pw"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := store.Authenticate(context.Background(), "user@example.com", "bad")
	if !errors.Is(err, upstream.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGetUnknownSession(t *testing.T) {
	store, _ := newTestStore(t, okLogin("user"))

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, err := store.Get(context.Background(), ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for empty id, got %v", err)
	}
}

func TestGetExpiredSession(t *testing.T) {
	store, mr := newTestStore(t, okLogin("user"))
	ctx := context.Background()

	sess, err := store.Authenticate(ctx, "user@example.com", "pw")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after expiry, got %v", err)
	}
}

func TestEndIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t, okLogin("admin"))
	ctx := context.Background()

	sess, err := store.Authenticate(ctx, "admin@example.com", "pw")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if err := store.End(ctx, sess.ID); err != nil {
		t.Fatalf("end: %v", err)
	}
	if err := store.End(ctx, sess.ID); err != nil {
		t.Fatalf("second end should succeed: %v", err)
	}
	if err := store.End(ctx, ""); err != nil {
		t.Fatalf("end with empty id should succeed: %v", err)
	}

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("admin"); err != nil {
		t.Fatalf("admin should parse: %v", err)
	}
	if _, err := ParseRole("user"); err != nil {
		t.Fatalf("user should parse: %v", err)
	}
	if _, err := ParseRole("guest"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
