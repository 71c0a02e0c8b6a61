// Package server tracks the live game sessions of one process. Sessions never
// share world state; the hub only counts them and broadcasts shutdown.
package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrHubFull is returned by Register when MaxSessions sessions are live.
var ErrHubFull = errors.New("session limit reached")

// Registry is the interface clients use to join and leave the hub.
type Registry interface {
	Register(username string) (*Handle, error)
	Unregister(id uuid.UUID)
	Count() int
}

// Hub is the registry of live sessions. It is safe for concurrent use.
type Hub struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Handle
	maxSessions int
	shutdown    bool
}

// Compile-time check that Hub implements Registry.
var _ Registry = (*Hub)(nil)

// Handle represents one session's membership in the hub.
type Handle struct {
	ID       uuid.UUID
	Username string
	Joined   time.Time
	EventsCh chan Event // Closed on Unregister
}

// Event is sent from the hub to a session.
type Event struct {
	Type EventType
}

// EventType identifies the type of hub event.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// NewHub creates a hub. maxSessions <= 0 means unlimited.
func NewHub(maxSessions int) *Hub {
	return &Hub{
		sessions:    make(map[uuid.UUID]*Handle),
		maxSessions: maxSessions,
	}
}

// Register adds a session and returns its handle.
func (h *Hub) Register(username string) (*Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxSessions > 0 && len(h.sessions) >= h.maxSessions {
		return nil, ErrHubFull
	}

	handle := &Handle{
		ID:       uuid.New(),
		Username: username,
		Joined:   time.Now(),
		EventsCh: make(chan Event, 4),
	}
	if h.shutdown {
		handle.EventsCh <- Event{Type: EventServerShutdown}
	}
	h.sessions[handle.ID] = handle
	return handle, nil
}

// Unregister removes a session and closes its event channel.
// Unknown IDs are ignored.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if handle, ok := h.sessions[id]; ok {
		close(handle.EventsCh)
		delete(h.sessions, id)
	}
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session that the server is stopping and waits
// until all of them unregister or ctx is done. Sessions registering after
// Shutdown was called are notified immediately.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.shutdown = true
	for _, handle := range h.sessions {
		select {
		case handle.EventsCh <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.Unlock()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Count() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
