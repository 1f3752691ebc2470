package notify

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller(t *testing.T) {
	t.Run("Should suppress the cold-start snapshot and emit on increase", func(t *testing.T) {
		var pending atomic.Int64
		pending.Store(4)

		p := NewPoller(func(context.Context) (int, error) {
			return int(pending.Load()), nil
		}, 10*time.Millisecond)

		alerts, cancel := p.Subscribe()
		defer cancel()

		p.Start()
		defer p.Stop()

		// The first reads observe the existing 4 orders without emitting.
		select {
		case alert := <-alerts:
			t.Fatalf("unexpected cold-start alert: %+v", alert)
		case <-time.After(50 * time.Millisecond):
		}

		pending.Store(6)
		select {
		case alert := <-alerts:
			assert.Equal(t, 6, alert.PendingCount)
			assert.Equal(t, 2, alert.Delta)
		case <-time.After(time.Second):
			t.Fatal("expected an alert after the pending count increased")
		}
	})

	t.Run("Should not emit when the count decreases", func(t *testing.T) {
		var pending atomic.Int64
		pending.Store(5)

		p := NewPoller(func(context.Context) (int, error) {
			return int(pending.Load()), nil
		}, 10*time.Millisecond)

		alerts, cancel := p.Subscribe()
		defer cancel()

		p.Start()
		defer p.Stop()

		time.Sleep(50 * time.Millisecond) // let the baseline settle
		pending.Store(2)

		select {
		case alert := <-alerts:
			t.Fatalf("unexpected alert on decrease: %+v", alert)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("Should deliver nothing after unsubscribe", func(t *testing.T) {
		var pending atomic.Int64

		p := NewPoller(func(context.Context) (int, error) {
			return int(pending.Load()), nil
		}, 10*time.Millisecond)

		alerts, cancel := p.Subscribe()
		p.Start()
		defer p.Stop()

		time.Sleep(30 * time.Millisecond)
		cancel()
		pending.Store(10)
		time.Sleep(50 * time.Millisecond)

		// The channel was closed by cancel; no alert may arrive.
		alert, ok := <-alerts
		require.False(t, ok, "expected closed channel, got %+v", alert)
	})

	t.Run("Should stop cleanly and close subscribers", func(t *testing.T) {
		p := NewPoller(func(context.Context) (int, error) { return 0, nil }, 10*time.Millisecond)
		alerts, _ := p.Subscribe()
		p.Start()
		p.Stop()

		_, ok := <-alerts
		assert.False(t, ok)
	})
}
