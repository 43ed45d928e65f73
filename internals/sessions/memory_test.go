package sessions

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestStore(start time.Time) (*MemoryStore, *time.Time) {
	now := start
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	return store, &now
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	sess := Session{UserID: "u1", UserName: "Dana", Email: "dana@example.com", Role: "USER"}
	if err := store.Set(ctx, "tok", sess, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sess {
		t.Fatalf("Get = %+v, want %+v", got, sess)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store, now := newTestStore(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if err := store.Set(ctx, "tok", Session{UserID: "u1"}, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	*now = now.Add(SessionTTL + time.Minute)
	if _, err := store.Get(ctx, "tok"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get after expiry = %v, want ErrSessionNotFound", err)
	}
}

func TestMemoryStoreGetSlidesTTL(t *testing.T) {
	store, now := newTestStore(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if err := store.Set(ctx, "tok", Session{UserID: "u1"}, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Touch the session just before the original deadline; the read should
	// push the deadline out by a full TTL.
	*now = now.Add(SessionTTL - time.Hour)
	if _, err := store.Get(ctx, "tok"); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	*now = now.Add(SessionTTL - time.Hour)
	if _, err := store.Get(ctx, "tok"); err != nil {
		t.Fatalf("Get after slide: %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store, _ := newTestStore(time.Now())
	ctx := context.Background()

	if err := store.Set(ctx, "tok", Session{UserID: "u1"}, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "tok"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get after delete = %v, want ErrSessionNotFound", err)
	}
}

func TestNewTokenIsUnique(t *testing.T) {
	a, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	b, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	if a == b {
		t.Fatal("two tokens collided")
	}
	if len(a) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars", len(a))
	}
}
