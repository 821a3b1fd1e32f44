package nav

import "github.com/atomicstack/termfolio/internal/logging/events"

// ElevationThreshold is the scroll offset above which the header is elevated.
const ElevationThreshold = 10

// ScrollPhase is the header's visual mode.
type ScrollPhase int

const (
	PhaseTop ScrollPhase = iota
	PhaseElevated
)

func (p ScrollPhase) String() string {
	if p == PhaseElevated {
		return "elevated"
	}
	return "top"
}

// PhaseFor derives the phase for a scroll offset.
func PhaseFor(offset int) ScrollPhase {
	if offset > ElevationThreshold {
		return PhaseElevated
	}
	return PhaseTop
}

// ScrollTracker keeps the current ScrollPhase in step with scroll events.
// Every event recomputes the phase; there is no smoothing.
type ScrollTracker struct {
	phase    ScrollPhase
	offset   int
	sub      Subscription
	onChange func(ScrollPhase)
}

// NewScrollTracker returns a tracker at PhaseTop. onChange, when set, runs
// after each phase flip.
func NewScrollTracker(onChange func(ScrollPhase)) *ScrollTracker {
	return &ScrollTracker{onChange: onChange}
}

// Attach starts observing env. Attaching an attached tracker is a no-op.
// A nil env leaves the tracker at its last phase.
func (t *ScrollTracker) Attach(env Environment) {
	if t.sub != nil || env == nil {
		return
	}
	t.sub = env.OnScroll(t.observe)
}

// Detach releases the scroll subscription.
func (t *ScrollTracker) Detach() {
	if t.sub == nil {
		return
	}
	t.sub.Unsubscribe()
	t.sub = nil
}

// Attached reports whether the tracker holds a subscription.
func (t *ScrollTracker) Attached() bool {
	return t.sub != nil
}

// Phase returns the current phase.
func (t *ScrollTracker) Phase() ScrollPhase {
	return t.phase
}

// Offset returns the last observed offset.
func (t *ScrollTracker) Offset() int {
	return t.offset
}

func (t *ScrollTracker) observe(offset int) {
	t.offset = offset
	next := PhaseFor(offset)
	if next == t.phase {
		return
	}
	t.phase = next
	events.Nav.Phase(next.String(), offset)
	if t.onChange != nil {
		t.onChange(next)
	}
}
