package notify

import (
	"sync"
	"time"
)

// OrderAlert is emitted when the number of pending, non-deleted buy orders
// increases. Subscribers use it to surface a "new order" signal.
type OrderAlert struct {
	PendingCount int       `json:"pendingCount"`
	Delta        int       `json:"delta"`
	At           time.Time `json:"at"`
}

// OrderWatcher observes the transaction collection and emits OrderAlerts.
// The very first observation after the watcher starts never emits
// (cold-start suppression); only subsequent increases do. Unsubscribing
// guarantees no further sends on the returned channel.
type OrderWatcher interface {
	Subscribe() (<-chan OrderAlert, func())
	Stop()
}

// fanout delivers alerts to a dynamic subscriber set. Channels are buffered
// one deep with latest-wins delivery: a slow listener misses intermediate
// alerts and sees only the newest, which matches the no-backpressure model.
type fanout struct {
	mu   sync.Mutex
	subs map[int]chan OrderAlert
	next int
}

func newFanout() *fanout {
	return &fanout{subs: make(map[int]chan OrderAlert)}
}

// Subscribe registers a listener; the cancel func detaches it and closes
// the channel.
func (f *fanout) Subscribe() (<-chan OrderAlert, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan OrderAlert, 1)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if existing, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(existing)
		}
	}
	return ch, cancel
}

func (f *fanout) publish(alert OrderAlert) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- alert:
		default:
			// Drop the stale alert and replace it with the newest.
			select {
			case <-ch:
			default:
			}
			ch <- alert
		}
	}
}

func (f *fanout) closeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
