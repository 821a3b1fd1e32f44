package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/ui/command"
)

// loadMode says how a finished page load affects history and scroll.
type loadMode int

const (
	// loadVisit pushes the previous page onto the history.
	loadVisit loadMode = iota
	// loadBack shows a page popped from the history.
	loadBack
	// loadRefresh re-renders the current page in place.
	loadRefresh
)

type navIntent struct {
	path string
	mode loadMode
}

// pageLoadedMsg mirrors the async page load response.
type pageLoadedMsg struct {
	path  string
	title string
	body  string
	found bool
	mode  loadMode
	err   error
}

// route implements the engine's router: intents are collected during the
// current update and turned into loads by finishUpdate.
func (m *Model) route(destination string) {
	m.intents = append(m.intents, navIntent{path: destination, mode: loadVisit})
}

func (m *Model) drainIntents() []navIntent {
	if len(m.intents) == 0 {
		return nil
	}
	intents := m.intents
	m.intents = nil
	return intents
}

// loadPageCmd resolves and renders path on the command bus. The library and
// renderer are captured now so a reload or resize cannot race the load.
func (m *Model) loadPageCmd(path string, mode loadMode) tea.Cmd {
	lib := m.pages.Library()
	renderer := m.renderer
	return m.bus.Execute(command.Request{
		ID:    "page:" + path,
		Label: path,
		Run: func() tea.Msg {
			page, found := lib.Resolve(path)
			body, err := renderer.Render(page)
			if err != nil {
				logging.Error(err)
			}
			return pageLoadedMsg{path: path, title: page.Title, body: body, found: found, mode: mode, err: err}
		},
	})
}

func (m *Model) handlePageLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(pageLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.err != nil {
		m.setError(loaded.err)
		return nil
	}
	switch loaded.mode {
	case loadVisit:
		m.pages.SetCurrent(loaded.path)
	case loadRefresh:
		if loaded.path != m.pages.Current() {
			return nil
		}
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(loaded.body)
	if loaded.mode == loadRefresh {
		m.viewport.SetYOffset(offset)
	} else {
		m.viewport.GotoTop()
	}
	m.publishScroll()
	if !loaded.found {
		m.errMsg = "no page at " + loaded.path
	}
	return nil
}

// goBack returns to the previous page. The bar is remounted there so the
// active route matches the restored location. An open menu is discarded
// with the old bar, not closed: the new bar simply starts Closed.
func (m *Model) goBack() tea.Cmd {
	path, ok := m.pages.Back()
	if !ok {
		return nil
	}
	m.mountBar(path)
	return m.loadPageCmd(path, loadBack)
}

// Current returns the path of the page on screen.
func (m *Model) Current() string {
	return m.pages.Current()
}
