package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	t.Run("Should deliver generations only for the watched collection", func(t *testing.T) {
		h := NewHub()
		ch, cancel := h.Watch("transactions")
		defer cancel()

		h.Publish("users")
		select {
		case gen := <-ch:
			t.Fatalf("unexpected signal for other collection: %d", gen)
		default:
		}

		h.Publish("transactions")
		gen := <-ch
		assert.Equal(t, uint64(1), gen)
	})

	t.Run("Should coalesce to the newest generation for slow receivers", func(t *testing.T) {
		h := NewHub()
		ch, cancel := h.Watch("transactions")
		defer cancel()

		h.Publish("transactions")
		h.Publish("transactions")
		h.Publish("transactions")

		// Only the latest generation is buffered; never a stale one.
		gen := <-ch
		assert.Equal(t, uint64(3), gen)
		select {
		case gen := <-ch:
			t.Fatalf("unexpected extra signal: %d", gen)
		default:
		}
	})

	t.Run("Should deliver monotonically non-decreasing generations", func(t *testing.T) {
		h := NewHub()
		ch, cancel := h.Watch("transactions")
		defer cancel()

		var last uint64
		for i := 0; i < 10; i++ {
			h.Publish("transactions")
			gen := <-ch
			require.GreaterOrEqual(t, gen, last)
			last = gen
		}
	})

	t.Run("Should close the channel and stop delivery on cancel", func(t *testing.T) {
		h := NewHub()
		ch, cancel := h.Watch("transactions")

		cancel()
		h.Publish("transactions")

		_, ok := <-ch
		assert.False(t, ok)

		// Double cancel is safe.
		cancel()
	})
}
