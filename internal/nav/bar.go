package nav

import "github.com/atomicstack/termfolio/internal/logging/events"

// Tooltip receives hover text for desktop links.
type Tooltip interface {
	Tooltip(anchor, text string)
}

// ItemView is an item together with its derived presentation flags.
type ItemView struct {
	Item
	Active bool
}

// Presentation is the renderer-facing projection of engine state.
type Presentation struct {
	Phase    ScrollPhase
	Elevated bool
	MenuOpen bool
	Active   string
	Items    []ItemView
}

// BarConfig wires a Bar to its collaborators.
type BarConfig struct {
	Table    *Table
	Router   Router
	Env      Environment
	Boundary Region
	Toggle   Region
	Surface  Surface
	// OnChange runs once per committed state change.
	OnChange func(Presentation)
}

// Bar composes the navigation engine.
type Bar struct {
	table    *Table
	env      Environment
	resolver Resolver
	tracker  *ScrollTracker
	menu     *MenuController
	portal   *Portal
	router   Router
	onChange func(Presentation)
	mounted  bool

	// unmounted is final: a torn-down bar cannot be mounted again because
	// its portal is closed for good.
	unmounted bool
}

// NewBar builds an unmounted bar.
func NewBar(cfg BarConfig) *Bar {
	b := &Bar{
		table:    cfg.Table,
		env:      cfg.Env,
		resolver: NewResolver(cfg.Table),
		router:   cfg.Router,
		onChange: cfg.OnChange,
		portal:   NewPortal(cfg.Surface),
	}
	b.tracker = NewScrollTracker(func(ScrollPhase) { b.notify() })
	b.menu = NewMenuController(cfg.Table, cfg.Router, cfg.Env, cfg.Boundary, cfg.Toggle, func(MenuSnapshot) { b.notify() })
	return b
}

// Mount resolves the active route for path and starts observing scroll
// events. Mounting a mounted or torn-down bar does nothing; build a new bar
// instead.
func (b *Bar) Mount(path string) {
	if b.mounted || b.unmounted {
		return
	}
	b.mounted = true
	id, _ := b.resolver.Resolve(path)
	b.menu.setActive(id)
	b.tracker.Attach(b.env)
	events.Nav.Mount(path, id)
}

// Unmount releases every subscription held by the bar and its portal and
// closes the menu. Later calls on the bar change nothing.
func (b *Bar) Unmount() {
	if !b.mounted {
		return
	}
	b.mounted = false
	b.unmounted = true
	b.tracker.Detach()
	b.menu.release()
	b.portal.Close()
	events.Nav.Unmount()
}

// Mounted reports whether Mount has run without a matching Unmount.
func (b *Bar) Mounted() bool {
	return b.mounted
}

// Table returns the navigation table.
func (b *Bar) Table() *Table {
	return b.table
}

// Portal returns the overlay portal used for the menu.
func (b *Bar) Portal() *Portal {
	return b.portal
}

// Phase returns the scroll phase.
func (b *Bar) Phase() ScrollPhase {
	return b.tracker.Phase()
}

// MenuState returns the menu state.
func (b *Bar) MenuState() MenuState {
	return b.menu.State()
}

// Active returns the active item id.
func (b *Bar) Active() string {
	return b.menu.Active()
}

// Armed reports whether the dismissal listener is attached.
func (b *Bar) Armed() bool {
	return b.menu.Armed()
}

// Toggle flips the menu.
func (b *Bar) Toggle() {
	b.menu.Toggle()
}

// RequestClose closes the menu if it is open.
func (b *Bar) RequestClose() {
	b.menu.RequestClose()
}

// SelectItem selects id from the menu.
func (b *Bar) SelectItem(id string) {
	b.menu.SelectItem(id)
}

// Activate follows a desktop link.
func (b *Bar) Activate(id string) bool {
	return b.menu.Activate(id)
}

// Navigate forwards a destination that is not a table item, such as the
// contact page. The active route is left alone.
func (b *Bar) Navigate(destination string) {
	if b.router == nil || destination == "" || b.unmounted {
		return
	}
	events.Nav.Navigate(destination)
	b.router.Navigate(destination)
}

// Tooltips hands every item's description to tip.
func (b *Bar) Tooltips(tip Tooltip) {
	if tip == nil || b.table == nil {
		return
	}
	for _, item := range b.table.items {
		tip.Tooltip(item.ID, item.Description)
	}
}

// Presentation projects the current state.
func (b *Bar) Presentation() Presentation {
	phase := b.tracker.Phase()
	snap := b.menu.Snapshot()
	p := Presentation{
		Phase:    phase,
		Elevated: phase == PhaseElevated,
		MenuOpen: snap.State == MenuOpen,
		Active:   snap.Active,
	}
	if b.table != nil {
		p.Items = make([]ItemView, 0, len(b.table.items))
		for _, item := range b.table.items {
			p.Items = append(p.Items, ItemView{Item: item, Active: item.ID == snap.Active})
		}
	}
	return p
}

func (b *Bar) notify() {
	if b.onChange != nil {
		b.onChange(b.Presentation())
	}
}
