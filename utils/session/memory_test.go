package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStorePutGetDestroy(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	token := NewToken()
	data := Data{ID: "S001", Email: "amit@univ.edu", Name: "Amit Patel", Role: RoleStudent}

	if err := store.Put(ctx, token, data); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "S001" || got.Role != RoleStudent {
		t.Errorf("unexpected session data: %+v", got)
	}

	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if _, err := store.Get(ctx, token); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after destroy, got %v", err)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	if _, err := store.Get(context.Background(), "nonexistent"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	token := NewToken()
	if err := store.Put(ctx, token, Data{Role: RoleFaculty}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := store.Get(ctx, token); err != ErrNotFound {
		t.Errorf("expected expired session to be gone, got %v", err)
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Put(ctx, NewToken(), Data{Role: RoleStudent}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	time.Sleep(20 * time.Millisecond)

	// A fresh session must survive the sweep
	live := NewToken()
	if err := store.Put(ctx, live, Data{Role: RoleAdmin}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	removed := store.Sweep()
	if removed != 3 {
		t.Errorf("expected 3 swept sessions, got %d", removed)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 remaining session, got %d", store.Len())
	}
	if _, err := store.Get(ctx, live); err != nil {
		t.Errorf("live session was swept: %v", err)
	}
}

func TestNewTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewToken()
		if token == "" {
			t.Fatal("empty token")
		}
		if seen[token] {
			t.Fatalf("duplicate token: %s", token)
		}
		seen[token] = true
	}
}
