package server

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRegisterAssignsUniqueIDs(t *testing.T) {
	h := NewHub(0)
	a, err := h.Register("alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	b, err := h.Register("bob")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct session IDs")
	}
	if a.Username != "alice" || h.Count() != 2 {
		t.Fatalf("unexpected hub state: username=%q count=%d", a.Username, h.Count())
	}
}

func TestUnregisterClosesEvents(t *testing.T) {
	h := NewHub(0)
	handle, _ := h.Register("alice")
	h.Unregister(handle.ID)
	if h.Count() != 0 {
		t.Fatalf("expected empty hub, got %d", h.Count())
	}
	if _, ok := <-handle.EventsCh; ok {
		t.Fatal("expected closed event channel")
	}
	h.Unregister(handle.ID)
}

func TestFullHubRejects(t *testing.T) {
	h := NewHub(2)
	for i := 0; i < 2; i++ {
		if _, err := h.Register("p"); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
	if _, err := h.Register("late"); !errors.Is(err, ErrHubFull) {
		t.Fatalf("expected ErrHubFull, got %v", err)
	}
	if h.Count() != 2 {
		t.Fatalf("expected rejected session not counted, got %d", h.Count())
	}
}

func TestShutdownBroadcastsAndWaits(t *testing.T) {
	h := NewHub(0)
	handles := make([]*Handle, 3)
	for i := range handles {
		handles[i], _ = h.Register("p")
	}

	for _, handle := range handles {
		go func(handle *Handle) {
			ev := <-handle.EventsCh
			if ev.Type == EventServerShutdown {
				h.Unregister(handle.ID)
			}
		}(handle)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if h.Count() != 0 {
		t.Fatalf("expected all sessions gone, got %d", h.Count())
	}
}

func TestShutdownTimesOut(t *testing.T) {
	h := NewHub(0)
	h.Register("stubborn")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := h.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	late, _ := h.Register("late")
	select {
	case ev := <-late.EventsCh:
		if ev.Type != EventServerShutdown {
			t.Fatalf("unexpected event %v", ev.Type)
		}
	default:
		t.Fatal("expected late session to be told about the shutdown")
	}
}
