package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/nav"
)

const wheelStep = 3

// hostKeyName maps a key press onto the name published to the engine.
func hostKeyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeyEsc {
		return nav.KeyEscape
	}
	return msg.String()
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	m.hub.KeyDown(hostKeyName(keyMsg))

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		events.App.Stop("quit")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Escape):
		m.setFocus("")
		return nil
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeViewport()
		return nil
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.layout == LayoutMobile {
			m.bar.Toggle()
		}
		return nil
	}

	if m.bar.MenuState() == nav.MenuOpen {
		if handled := m.handleMenuKey(keyMsg); handled {
			return nil
		}
	}
	return m.handlePageKey(keyMsg)
}

// handleMenuKey drives the cursor of the open menu.
func (m *Model) handleMenuKey(msg tea.KeyMsg) bool {
	moved := false
	switch {
	case key.Matches(msg, m.keys.Up):
		moved = m.menu.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		moved = m.menu.MoveCursorDown()
	case key.Matches(msg, m.keys.Home):
		moved = m.menu.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		moved = m.menu.MoveCursorEnd()
	case key.Matches(msg, m.keys.PageUp):
		moved = m.menu.MoveCursorPageUp(m.menuVisibleItems())
	case key.Matches(msg, m.keys.PageDown):
		moved = m.menu.MoveCursorPageDown(m.menuVisibleItems())
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.menu.Current(); ok {
			m.bar.SelectItem(item.ID)
		}
		return true
	default:
		if idx, ok := digitIndex(msg); ok {
			if idx < len(m.menu.Items) {
				m.bar.SelectItem(m.menu.Items[idx].ID)
			}
			return true
		}
		return false
	}
	if moved {
		events.UI.MenuCursor(m.menu.Cursor)
	}
	return true
}

func (m *Model) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NextLink):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevLink):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Select):
		if m.focus != "" {
			m.bar.Activate(m.focus)
		}
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	case key.Matches(msg, m.keys.ScrollDown), key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.Top), key.Matches(msg, m.keys.Home):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom), key.Matches(msg, m.keys.End):
		m.viewport.GotoBottom()
	default:
		if idx, ok := digitIndex(msg); ok {
			if item, ok := m.bar.Table().At(idx); ok {
				m.bar.Activate(item.ID)
			}
		}
	}
	m.publishScroll()
	return nil
}

// digitIndex maps the keys 1-9 onto zero-based positions.
func digitIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return 0, false
	}
	n, err := strconv.Atoi(string(msg.Runes))
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}

// cycleFocus moves desktop link focus by delta, wrapping around.
func (m *Model) cycleFocus(delta int) {
	table := m.bar.Table()
	n := table.Len()
	if n == 0 || m.layout != LayoutDesktop {
		return
	}
	idx := table.IndexOf(m.focus)
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + delta + n) % n
	}
	item, _ := table.At(idx)
	m.setFocus(item.ID)
}

func (m *Model) setFocus(id string) {
	if m.focus == id {
		return
	}
	m.focus = id
	events.UI.LinkFocus(id)
}

// publishScroll hands the page offset to the engine when it has moved.
func (m *Model) publishScroll() {
	offset := m.viewport.YOffset
	if offset == m.lastOffset {
		return
	}
	m.lastOffset = offset
	m.hub.Scroll(offset)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.viewport.LineUp(wheelStep)
		m.publishScroll()
	case ev.Button == tea.MouseButtonWheelDown:
		m.viewport.LineDown(wheelStep)
		m.publishScroll()
	case ev.Action == tea.MouseActionMotion:
		m.hover(ev)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		m.click(ev)
	}
	return nil
}

func (m *Model) hover(ev tea.MouseMsg) {
	target := pointerTarget{hits: m.regions.Hits(ev), regions: m.regions}
	id, _ := target.first(zoneLinkPrefix)
	m.hovered = id
}

// click publishes the press to the engine first, so an outside press closes
// the menu before any link under the pointer is followed.
func (m *Model) click(ev tea.MouseMsg) {
	target := pointerTarget{hits: m.regions.Hits(ev), regions: m.regions}
	events.UI.Click(strings.Join(target.hits, ","), ev.X, ev.Y)
	m.hub.PointerDown(target)
	if len(target.hits) == 0 || !target.Attached() {
		return
	}
	cfg := m.sites.Config()
	if id, ok := target.first(zoneItemPrefix); ok {
		m.bar.SelectItem(id)
		return
	}
	if id, ok := target.first(zoneLinkPrefix); ok {
		m.setFocus(id)
		m.bar.Activate(id)
		return
	}
	if raw, ok := target.first(zoneSocialPrefix); ok {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 && idx < len(cfg.Social) {
			social := cfg.Social[idx]
			m.setInfo(social.Label + ": " + social.URL)
		}
		return
	}
	switch {
	case target.in(zoneToggle):
		m.bar.Toggle()
	case target.in(zoneMenuContact):
		m.bar.RequestClose()
		m.bar.Navigate(cfg.Contact.Path)
	case target.in(zoneContact):
		m.bar.Navigate(cfg.Contact.Path)
	case target.in(zoneBrand):
		m.bar.Navigate("/")
	}
}
