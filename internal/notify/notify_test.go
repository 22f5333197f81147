package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCenter(t *testing.T, ttl time.Duration) (*Center, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCenter(rdb, ttl), mr
}

func TestPushAndActiveOrdering(t *testing.T) {
	center, _ := newTestCenter(t, 3*time.Second)
	ctx := context.Background()

	center.Push(ctx, "s1", "first", SeveritySuccess)
	time.Sleep(5 * time.Millisecond)
	center.Push(ctx, "s1", "second", SeverityError)

	got, err := center.Active(ctx, "s1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Message != "first" || got[1].Message != "second" {
		t.Fatalf("expected oldest first, got %q then %q", got[0].Message, got[1].Message)
	}
	if got[1].Severity != SeverityError {
		t.Fatalf("severity = %s", got[1].Severity)
	}
}

func TestNotificationsAreScopedPerSession(t *testing.T) {
	center, _ := newTestCenter(t, 3*time.Second)
	ctx := context.Background()

	center.Push(ctx, "s1", "mine", SeverityInfo)
	center.Push(ctx, "s2", "theirs", SeverityInfo)

	got, err := center.Active(ctx, "s1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(got) != 1 || got[0].Message != "mine" {
		t.Fatalf("expected only own notifications, got %+v", got)
	}
}

func TestAutoDismissAfterTTL(t *testing.T) {
	center, mr := newTestCenter(t, 3*time.Second)
	ctx := context.Background()

	center.Push(ctx, "s1", "going", SeveritySuccess)

	mr.FastForward(4 * time.Second)

	got, err := center.Active(ctx, "s1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected notification expired, got %+v", got)
	}
}

func TestTimersAreIndependent(t *testing.T) {
	center, mr := newTestCenter(t, 3*time.Second)
	ctx := context.Background()

	center.Push(ctx, "s1", "old", SeverityInfo)
	mr.FastForward(2 * time.Second)
	center.Push(ctx, "s1", "new", SeverityInfo)
	mr.FastForward(2 * time.Second)

	got, err := center.Active(ctx, "s1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(got) != 1 || got[0].Message != "new" {
		t.Fatalf("expected only the newer notification, got %+v", got)
	}
}

func TestDismiss(t *testing.T) {
	center, _ := newTestCenter(t, time.Minute)
	ctx := context.Background()

	center.Push(ctx, "s1", "dismiss me", SeverityError)

	got, err := center.Active(ctx, "s1")
	if err != nil || len(got) != 1 {
		t.Fatalf("active: %v %+v", err, got)
	}

	if err := center.Dismiss(ctx, "s1", got[0].ID); err != nil {
		t.Fatalf("dismiss: %v", err)
	}

	got, err = center.Active(ctx, "s1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no notifications after dismiss, got %+v", got)
	}

	// Dismissing an already-gone notification is a no-op.
	if err := center.Dismiss(ctx, "s1", "already-gone"); err != nil {
		t.Fatalf("dismiss of missing id: %v", err)
	}
}
