// Package notify fans out store-change notifications to every other open
// view. A notification carries only the storage key that changed; receivers
// re-read the full state rather than trusting any payload.
package notify

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Change identifies a mutated storage slot.
type Change struct {
	Key string `json:"key"`
}

// Subscriber is one open view listening for changes.
type Subscriber struct {
	ID string
	C  chan Change
}

// Hub delivers Changes to all current subscribers. Delivery is best-effort:
// a subscriber whose buffer is full misses the notification, which is safe
// because every receiver re-reads the store on any signal.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*Subscriber
	closed bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]*Subscriber)}
}

// Subscribe registers a new view and returns its subscriber handle.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		ID: uuid.NewString(),
		C:  make(chan Change, 8),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(sub.C)
		return sub
	}
	h.subs[sub.ID] = sub
	return sub
}

// Unsubscribe removes a view and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sub, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(sub.C)
	}
}

// Broadcast sends the change to every subscriber without blocking.
func (h *Hub) Broadcast(c Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for _, sub := range h.subs {
		select {
		case sub.C <- c:
		default:
			zap.L().Debug("Dropping change notification for slow subscriber", zap.String("subscriber", sub.ID))
		}
	}
}

// Close shuts the hub down, closing all subscriber channels. Further
// Subscribe calls return an already-closed subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.C)
	}
}
