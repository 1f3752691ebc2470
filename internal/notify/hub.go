package notify

import "sync"

// Hub fans out collection-change signals. Repositories call Publish after
// every successful write; watchers receive monotonically non-decreasing
// generation numbers per collection, coalesced so a slow receiver only ever
// sees the newest generation (no out-of-order stale delivery).
type Hub struct {
	mu   sync.Mutex
	gens map[string]uint64
	subs map[int]*hubSub
	next int
}

type hubSub struct {
	collection string
	ch         chan uint64
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		gens: make(map[string]uint64),
		subs: make(map[int]*hubSub),
	}
}

// Publish records a change to the named collection and signals watchers.
func (h *Hub) Publish(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.gens[collection]++
	gen := h.gens[collection]

	for _, sub := range h.subs {
		if sub.collection != collection {
			continue
		}
		select {
		case sub.ch <- gen:
		default:
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- gen
		}
	}
}

// Watch subscribes to change signals for one collection. The returned cancel
// removes the subscription; no signal is delivered after it returns.
func (h *Hub) Watch(collection string) (<-chan uint64, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	sub := &hubSub{collection: collection, ch: make(chan uint64, 1)}
	h.subs[id] = sub

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if existing, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(existing.ch)
		}
	}
	return sub.ch, cancel
}
