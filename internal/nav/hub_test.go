package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()
	calls := 0
	sub := hub.OnKeyDown(func(KeyEvent) { calls++ })
	assert.Equal(t, 1, hub.Count(EventKeyDown))

	sub.Unsubscribe()
	sub.Unsubscribe()
	hub.KeyDown(KeyEscape)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, hub.Total())
}

func TestHubSkipsObserversRemovedDuringDelivery(t *testing.T) {
	hub := NewHub()
	var second Subscription
	secondCalls := 0
	hub.OnPointerDown(func(PointerEvent) { second.Unsubscribe() })
	second = hub.OnPointerDown(func(PointerEvent) { secondCalls++ })

	hub.PointerDown(target{})

	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, hub.Count(EventPointerDown))
}

func TestHubDeliversInSubscriptionOrder(t *testing.T) {
	hub := NewHub()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		hub.OnScroll(func(int) { order = append(order, i) })
	}
	hub.Scroll(3)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}
