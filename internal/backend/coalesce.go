package backend

import "time"

// coalescer collects events per path and releases them together once the
// window that opened with the first of them has elapsed.
type coalescer struct {
	interval time.Duration

	timer   *time.Timer
	pending map[string]Event
	order   []string
}

func newCoalescer(interval time.Duration) *coalescer {
	return &coalescer{interval: interval, pending: make(map[string]Event)}
}

func (c *coalescer) add(evt Event) {
	if _, seen := c.pending[evt.Path]; !seen {
		c.order = append(c.order, evt.Path)
	}
	c.pending[evt.Path] = evt
	if c.timer == nil {
		c.timer = time.NewTimer(c.interval)
	}
}

// ready fires when the current window closes. A nil channel blocks forever
// when nothing is pending.
func (c *coalescer) ready() <-chan time.Time {
	if c.timer == nil {
		return nil
	}
	return c.timer.C
}

// drain returns the pending events in arrival order and resets the window.
func (c *coalescer) drain() []Event {
	out := make([]Event, 0, len(c.order))
	for _, path := range c.order {
		out = append(out, c.pending[path])
	}
	c.pending = make(map[string]Event)
	c.order = nil
	c.stop()
	return out
}

func (c *coalescer) stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
