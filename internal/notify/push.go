package notify

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// TransactionsCollection is the hub collection name watched for new orders.
const TransactionsCollection = "transactions"

// PushWatcher derives order alerts from hub change signals instead of a
// timer. The pending count observed at Start is the baseline, so existing
// orders never fire an alert (same cold-start rule as the poller).
type PushWatcher struct {
	*fanout
	hub     *Hub
	count   PendingCounter
	cancel  context.CancelFunc
	unwatch func()
	done    chan struct{}
}

// NewPushWatcher builds a push watcher over the given hub; Start launches it.
func NewPushWatcher(hub *Hub, count PendingCounter) *PushWatcher {
	return &PushWatcher{
		fanout: newFanout(),
		hub:    hub,
		count:  count,
		done:   make(chan struct{}),
	}
}

// Start reads the baseline and begins consuming change signals.
func (w *PushWatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	signals, unwatch := w.hub.Watch(TransactionsCollection)
	w.unwatch = unwatch

	baseline := -1
	if n, err := w.count(ctx); err == nil {
		baseline = n
	}

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				n, err := w.count(ctx)
				if err != nil {
					log.Warn("order recount failed", "err", err)
					continue
				}
				if baseline < 0 {
					baseline = n
					continue
				}
				if n > baseline {
					w.publish(OrderAlert{PendingCount: n, Delta: n - baseline, At: time.Now()})
				}
				baseline = n
			}
		}
	}()
}

// Stop detaches from the hub and closes all subscriber channels.
func (w *PushWatcher) Stop() {
	if w.unwatch != nil {
		w.unwatch()
	}
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	w.closeAll()
}
