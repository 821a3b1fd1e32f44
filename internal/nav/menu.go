package nav

import "github.com/atomicstack/termfolio/internal/logging/events"

// MenuState is the open/closed status of the collapsible menu.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// CloseReason names the trigger that closed the menu.
type CloseReason string

const (
	CloseToggle    CloseReason = "toggle"
	CloseRequested CloseReason = "request"
	CloseOutside   CloseReason = CloseReason(DismissOutside)
	CloseEscape    CloseReason = CloseReason(DismissEscape)
	CloseSelection CloseReason = "selection"
)

// Router receives navigation intents.
type Router interface {
	Navigate(destination string)
}

// RouterFunc adapts a function to Router.
type RouterFunc func(destination string)

func (f RouterFunc) Navigate(destination string) {
	if f != nil {
		f(destination)
	}
}

// MenuSnapshot is the committed controller state.
type MenuSnapshot struct {
	State  MenuState
	Active string
}

// MenuController owns the menu state machine and the active route that
// menu selection updates. Each transition is committed as one snapshot.
type MenuController struct {
	table    *Table
	router   Router
	listener *DismissalListener
	onChange func(MenuSnapshot)

	state  MenuState
	active string

	// released is set by teardown; a released controller ignores input.
	released bool
}

// NewMenuController builds a closed controller. boundary and toggle describe
// the regions that do not count as outside interaction.
func NewMenuController(table *Table, router Router, env Environment, boundary, toggle Region, onChange func(MenuSnapshot)) *MenuController {
	c := &MenuController{
		table:    table,
		router:   router,
		onChange: onChange,
	}
	c.listener = NewDismissalListener(env, boundary, toggle, c.handleDismiss)
	return c
}

// State returns the menu state.
func (c *MenuController) State() MenuState {
	return c.state
}

// Active returns the active item id, or "" when none is active.
func (c *MenuController) Active() string {
	return c.active
}

// Armed reports whether the dismissal listener is attached.
func (c *MenuController) Armed() bool {
	return c.listener.Armed()
}

// Snapshot returns the committed state.
func (c *MenuController) Snapshot() MenuSnapshot {
	return MenuSnapshot{State: c.state, Active: c.active}
}

// Toggle opens a closed menu and closes an open one.
func (c *MenuController) Toggle() {
	if c.released {
		return
	}
	if c.state == MenuOpen {
		c.close(CloseToggle)
		return
	}
	c.state = MenuOpen
	// armed after the transition is applied so the opening interaction is
	// never seen as an outside one.
	c.listener.Arm()
	events.Nav.MenuOpen()
	c.commit()
}

// RequestClose closes the menu. It is a no-op when already closed.
func (c *MenuController) RequestClose() {
	c.close(CloseRequested)
}

// SelectItem activates id, closes the menu and forwards the item's
// destination to the router. Unknown ids only close the menu.
func (c *MenuController) SelectItem(id string) {
	if c.released {
		return
	}
	item, known := c.table.Find(id)
	changed := false
	if known && c.active != id {
		c.active = id
		changed = true
	}
	if c.state == MenuOpen {
		c.state = MenuClosed
		c.listener.Disarm()
		events.Nav.MenuClose(string(CloseSelection))
		changed = true
	}
	if changed {
		c.commit()
	}
	if !known {
		events.Nav.SelectUnknown(id)
		return
	}
	events.Nav.Select(id, item.Destination)
	c.navigate(item.Destination)
}

// Activate marks id active and forwards its destination without touching
// the menu state. It reports false for unknown ids.
func (c *MenuController) Activate(id string) bool {
	if c.released {
		return false
	}
	item, ok := c.table.Find(id)
	if !ok {
		return false
	}
	if c.active != id {
		c.active = id
		events.Nav.Route(id, "activate")
		c.commit()
	}
	c.navigate(item.Destination)
	return true
}

// setActive seeds the active route without a notification. Used at mount.
func (c *MenuController) setActive(id string) {
	c.active = id
}

// release drops the dismissal subscriptions on teardown. The menu ends
// Closed so state and subscriptions agree, and no later call re-arms it.
func (c *MenuController) release() {
	c.released = true
	c.state = MenuClosed
	c.listener.Disarm()
}

func (c *MenuController) handleDismiss(reason DismissReason) {
	c.close(CloseReason(reason))
}

func (c *MenuController) close(reason CloseReason) bool {
	if c.state == MenuClosed {
		return false
	}
	c.state = MenuClosed
	c.listener.Disarm()
	events.Nav.MenuClose(string(reason))
	c.commit()
	return true
}

func (c *MenuController) navigate(destination string) {
	if c.router == nil {
		return
	}
	events.Nav.Navigate(destination)
	c.router.Navigate(destination)
}

func (c *MenuController) commit() {
	if c.onChange != nil {
		c.onChange(c.Snapshot())
	}
}
