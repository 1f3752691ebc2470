package notify

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushWatcher(t *testing.T) {
	t.Run("Should treat the count at start as baseline", func(t *testing.T) {
		h := NewHub()
		var pending atomic.Int64
		pending.Store(3)

		w := NewPushWatcher(h, func(context.Context) (int, error) {
			return int(pending.Load()), nil
		})
		alerts, cancel := w.Subscribe()
		defer cancel()

		w.Start()
		defer w.Stop()

		// A publish that does not change the count emits nothing.
		h.Publish(TransactionsCollection)
		select {
		case alert := <-alerts:
			t.Fatalf("unexpected alert without an increase: %+v", alert)
		case <-time.After(30 * time.Millisecond):
		}

		pending.Store(5)
		h.Publish(TransactionsCollection)
		select {
		case alert := <-alerts:
			assert.Equal(t, 5, alert.PendingCount)
			assert.Equal(t, 2, alert.Delta)
		case <-time.After(time.Second):
			t.Fatal("expected an alert after the pending count increased")
		}
	})

	t.Run("Should emit once per detected increase", func(t *testing.T) {
		h := NewHub()
		var pending atomic.Int64

		w := NewPushWatcher(h, func(context.Context) (int, error) {
			return int(pending.Load()), nil
		})
		alerts, cancel := w.Subscribe()
		defer cancel()

		w.Start()
		defer w.Stop()

		pending.Store(1)
		h.Publish(TransactionsCollection)
		alert := <-alerts
		require.Equal(t, 1, alert.Delta)

		pending.Store(2)
		h.Publish(TransactionsCollection)
		alert = <-alerts
		require.Equal(t, 1, alert.Delta)
		require.Equal(t, 2, alert.PendingCount)
	})

	t.Run("Should stop cleanly and close subscribers", func(t *testing.T) {
		h := NewHub()
		w := NewPushWatcher(h, func(context.Context) (int, error) { return 0, nil })
		alerts, _ := w.Subscribe()

		w.Start()
		w.Stop()

		_, ok := <-alerts
		assert.False(t, ok)

		// Publishing after stop must not panic or deliver.
		h.Publish(TransactionsCollection)
	})
}
