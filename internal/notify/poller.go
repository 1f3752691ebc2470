package notify

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// PendingCounter reports the current number of pending, non-deleted orders.
type PendingCounter func(ctx context.Context) (int, error)

// Poller is the poll-and-diff order watcher used with the file-backed store:
// on a fixed interval it re-reads the pending order count and emits one
// alert per detected increase. The first successful read only establishes
// the baseline.
type Poller struct {
	*fanout
	count    PendingCounter
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewPoller builds a poller; Start launches it.
func NewPoller(count PendingCounter, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Poller{
		fanout:   newFanout(),
		count:    count,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling in a background goroutine.
func (p *Poller) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		baseline := -1
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := p.count(ctx)
				if err != nil {
					log.Warn("order poll failed", "err", err)
					continue
				}
				if baseline < 0 {
					baseline = n // cold start: observe, never emit
					continue
				}
				if n > baseline {
					p.publish(OrderAlert{PendingCount: n, Delta: n - baseline, At: time.Now()})
				}
				baseline = n
			}
		}
	}()
}

// Stop cancels polling and closes all subscriber channels.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
		<-p.done
	}
	p.closeAll()
}
