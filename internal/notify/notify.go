// ABOUTME: Observer hub for fire-and-forget sync notifications.
// ABOUTME: Listeners run on their own goroutine and can never fail a local write.
package notify

import "sync"

// EventType identifies which part of the tracked state changed.
type EventType string

const (
	EventFoodLog   EventType = "food_log"
	EventExercise  EventType = "exercise_log"
	EventWater     EventType = "water_log"
	EventProfile   EventType = "profile"
	EventHistory   EventType = "history"
	EventFavorites EventType = "favorites"
	EventWeight    EventType = "weight_log"
	EventStreak    EventType = "streak"
)

// Event carries the change type and a snapshot of the affected state.
type Event struct {
	Type    EventType
	Payload any
}

// Listener receives events. Implementations must tolerate being called
// concurrently with local writes; panics are swallowed.
type Listener func(Event)

// Hub fans events out to registered listeners. The zero value is usable and
// publishing with no listeners is a no-op.
type Hub struct {
	mu        sync.RWMutex
	listeners map[int]Listener
	next      int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[int]Listener)}
}

// Subscribe registers a listener and returns a handle for Unsubscribe.
func (h *Hub) Subscribe(l Listener) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners == nil {
		h.listeners = make(map[int]Listener)
	}
	id := h.next
	h.next++
	h.listeners[id] = l
	return id
}

// Unsubscribe removes a listener. Unknown handles are ignored.
func (h *Hub) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, id)
}

// Publish delivers an event to every listener without blocking the caller.
// A nil hub is a safe no-op so stores can run without sync wired up.
func (h *Hub) Publish(e Event) {
	if h == nil {
		return
	}
	h.mu.RLock()
	ls := make([]Listener, 0, len(h.listeners))
	for _, l := range h.listeners {
		ls = append(ls, l)
	}
	h.mu.RUnlock()

	for _, l := range ls {
		go func(l Listener) {
			defer func() { _ = recover() }()
			l(e)
		}(l)
	}
}
