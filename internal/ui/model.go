package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/backend"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/data/dispatcher"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/nav"
	"github.com/atomicstack/termfolio/internal/site"
	"github.com/atomicstack/termfolio/internal/state"
	"github.com/atomicstack/termfolio/internal/theme"
	"github.com/atomicstack/termfolio/internal/ui/command"
	uistate "github.com/atomicstack/termfolio/internal/ui/state"
)

type level = uistate.Level

// Layout selects how the header is drawn.
type Layout int

const (
	LayoutDesktop Layout = iota
	LayoutMobile
)

func (l Layout) String() string {
	if l == LayoutMobile {
		return "mobile"
	}
	return "desktop"
}

const (
	defaultWidth      = 80
	defaultHeight     = 24
	defaultBreakpoint = 72
	// headerHeight covers the brand row and the phase/tooltip row.
	headerHeight = 2
	infoDuration = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Site       *site.Config
	Library    *content.Library
	Path       string
	Width      int
	Height     int
	Breakpoint int
	Style      string
	ShowFooter bool
	Verbose    bool
	Watcher    *backend.Watcher
	ContentDir string
	SiteFile   string
	// Regions defaults to bubblezone marks.
	Regions Regions
}

// Model implements the Bubble Tea model for the portfolio shell.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	breakpoint  int
	layout      Layout
	showFooter  bool
	verbose     bool
	style       string

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	quitting   bool

	hub          *nav.Hub
	bar          *nav.Bar
	presentation nav.Presentation
	surface      *overlaySurface
	regions      Regions
	tooltips     map[string]string
	menu         *level
	focus        string
	hovered      string
	ready        bool

	viewport   viewport.Model
	lastOffset int
	renderer   *content.Renderer
	start      string
	intents    []navIntent

	help help.Model
	keys keyMap

	handlers map[reflect.Type]msgHandler

	bus        *command.Bus
	backend    *backend.Watcher
	pages      state.PageStore
	sites      state.SiteStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel builds the shell. The bar is mounted at opts.Path immediately;
// the overlay portal becomes ready once the program delivers its first
// message.
func NewModel(opts Options) (*Model, error) {
	sites, err := state.NewSiteStore(opts.Site)
	if err != nil {
		return nil, err
	}
	lib := opts.Library
	if lib == nil {
		if lib, err = content.Builtin(); err != nil {
			return nil, err
		}
	}
	path := opts.Path
	if path == "" {
		path = "/"
	}
	regions := opts.Regions
	if regions == nil {
		regions = newZoneRegions()
	}
	breakpoint := opts.Breakpoint
	if breakpoint <= 0 {
		breakpoint = defaultBreakpoint
	}
	pages := state.NewPageStore(lib, "")
	m := &Model{
		width:      defaultWidth,
		height:     defaultHeight,
		breakpoint: breakpoint,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		style:      opts.Style,
		hub:        nav.NewHub(),
		surface:    newOverlaySurface(),
		regions:    regions,
		help:       help.New(),
		keys:       defaultKeyMap(),
		bus:        command.New(),
		backend:    opts.Watcher,
		pages:      pages,
		sites:      sites,
		dispatcher: dispatcher.New(pages, sites, opts.ContentDir, opts.SiteFile),
		start:      path,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.renderer, err = content.NewRenderer(m.style, m.pageWidth()); err != nil {
		return nil, err
	}
	m.viewport = viewport.New(m.width, m.pageHeight())
	m.layout = m.layoutFor(m.width)
	m.mountBar(path)
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		func() tea.Msg { return surfaceReadyMsg{} },
		m.loadPageCmd(m.start, loadVisit),
	}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(surfaceReadyMsg{}):   m.handleSurfaceReadyMsg,
		reflect.TypeOf(pageLoadedMsg{}):     m.handlePageLoadedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate turns navigation intents collected during the handler into
// page loads.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	for _, intent := range m.drainIntents() {
		cmds = append(cmds, m.loadPageCmd(intent.path, intent.mode))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// surfaceReadyMsg marks the first live pass of the program.
type surfaceReadyMsg struct{}

func (m *Model) handleSurfaceReadyMsg(tea.Msg) tea.Cmd {
	m.ready = true
	m.bar.Portal().Ready()
	return nil
}

// mountBar builds a fresh bar for the current site table and mounts it at
// path. A previous bar is unmounted first so its listeners are released.
func (m *Model) mountBar(path string) {
	if m.bar != nil {
		m.bar.Unmount()
	}
	table := m.sites.Table()
	m.bar = nav.NewBar(nav.BarConfig{
		Table:    table,
		Router:   nav.RouterFunc(m.route),
		Env:      m.hub,
		Boundary: zoneRegion(zoneMenu),
		Toggle:   zoneRegion(zoneToggle),
		Surface:  m.surface,
		OnChange: m.handlePresentation,
	})
	m.bar.Mount(path)
	m.tooltips = make(map[string]string, table.Len())
	m.bar.Tooltips(m)
	if m.menu == nil {
		m.menu = uistate.NewLevel("menu", table.Items())
	} else {
		m.menu.UpdateItems(table.Items())
	}
	if m.focus != "" && table.IndexOf(m.focus) < 0 {
		m.focus = ""
	}
	m.presentation = m.bar.Presentation()
	if m.ready {
		m.bar.Portal().Ready()
	}
	// the tracker starts at Top; replay the current offset so the phase
	// matches the page that is already scrolled.
	if m.lastOffset != 0 {
		m.hub.Scroll(m.lastOffset)
	}
}

// handlePresentation receives every committed engine change.
func (m *Model) handlePresentation(p nav.Presentation) {
	opened := p.MenuOpen && !m.presentation.MenuOpen
	m.presentation = p
	if opened {
		if idx := m.menu.IndexOf(p.Active); idx >= 0 {
			m.menu.SetCursor(idx)
		}
		events.UI.MenuCursor(m.menu.Cursor)
	}
}

// Tooltip implements nav.Tooltip.
func (m *Model) Tooltip(anchor, text string) {
	m.tooltips[anchor] = text
}

func (m *Model) layoutFor(width int) Layout {
	if width < m.breakpoint {
		return LayoutMobile
	}
	return LayoutDesktop
}

func (m *Model) pageWidth() int {
	w := m.width - 2
	if w < content.MinWidth {
		w = content.MinWidth
	}
	return w
}

func (m *Model) pageHeight() int {
	h := m.height - headerHeight - 1
	if m.showFooter {
		h -= m.footerHeight()
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) footerHeight() int {
	if !m.showFooter {
		return 0
	}
	if m.help.ShowAll {
		rows := 0
		for _, col := range m.keys.FullHelp() {
			if len(col) > rows {
				rows = len(col)
			}
		}
		return rows
	}
	return 1
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	prevWidth := m.width
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.resizeViewport()
	if layout := m.layoutFor(m.width); layout != m.layout {
		m.layout = layout
		events.UI.Layout(layout.String(), m.width, m.height)
		if layout == LayoutDesktop {
			// the collapsible menu only exists on narrow screens
			m.bar.RequestClose()
		}
	}
	if m.width == prevWidth {
		return nil
	}
	renderer, err := content.NewRenderer(m.style, m.pageWidth())
	if err != nil {
		m.setError(err)
		return nil
	}
	m.renderer = renderer
	return m.loadPageCmd(m.pages.Current(), loadRefresh)
}

func (m *Model) resizeViewport() {
	m.viewport.Width = m.width
	m.viewport.Height = m.pageHeight()
	m.publishScroll()
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.errMsg = err.Error()
	events.Action.Error(err)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

// Close unmounts the bar and releases the region manager.
func (m *Model) Close() {
	if m.bar != nil {
		m.bar.Unmount()
	}
	if m.regions != nil {
		m.regions.Close()
	}
}
