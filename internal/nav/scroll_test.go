package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseForThreshold(t *testing.T) {
	cases := map[int]ScrollPhase{
		-5: PhaseTop,
		0:  PhaseTop,
		10: PhaseTop,
		11: PhaseElevated,
		50: PhaseElevated,
	}
	for offset, want := range cases {
		assert.Equal(t, want, PhaseFor(offset), "offset %d", offset)
	}
}

func TestScrollTrackerFlipsBothWays(t *testing.T) {
	hub := NewHub()
	var flips []ScrollPhase
	tracker := NewScrollTracker(func(p ScrollPhase) { flips = append(flips, p) })
	tracker.Attach(hub)
	require.Equal(t, PhaseTop, tracker.Phase())

	for offset := 0; offset <= 50; offset += 5 {
		hub.Scroll(offset)
	}
	assert.Equal(t, PhaseElevated, tracker.Phase())
	hub.Scroll(0)
	assert.Equal(t, PhaseTop, tracker.Phase())
	assert.Equal(t, []ScrollPhase{PhaseElevated, PhaseTop}, flips)
}

func TestScrollTrackerOscillationIsNotSmoothed(t *testing.T) {
	hub := NewHub()
	flips := 0
	tracker := NewScrollTracker(func(ScrollPhase) { flips++ })
	tracker.Attach(hub)
	for i := 0; i < 4; i++ {
		hub.Scroll(11)
		hub.Scroll(10)
	}
	assert.Equal(t, 8, flips)
	assert.Equal(t, PhaseTop, tracker.Phase())
	assert.Equal(t, 10, tracker.Offset())
}

func TestScrollTrackerWithoutSourceKeepsLastPhase(t *testing.T) {
	hub := NewHub()
	tracker := NewScrollTracker(nil)
	tracker.Attach(hub)
	hub.Scroll(40)
	tracker.Detach()
	hub.Scroll(0)
	assert.Equal(t, PhaseElevated, tracker.Phase())
	assert.Equal(t, 0, hub.Count(EventScroll))

	orphan := NewScrollTracker(nil)
	orphan.Attach(nil)
	assert.False(t, orphan.Attached())
	assert.Equal(t, PhaseTop, orphan.Phase())
}

func TestScrollTrackerAttachTwiceHoldsOneSubscription(t *testing.T) {
	hub := NewHub()
	tracker := NewScrollTracker(nil)
	tracker.Attach(hub)
	tracker.Attach(hub)
	assert.Equal(t, 1, hub.Count(EventScroll))
	tracker.Detach()
	tracker.Detach()
	assert.Equal(t, 0, hub.Count(EventScroll))
}
