package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/backend"
	"github.com/atomicstack/termfolio/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		events.Watch.Error(res.Err)
		m.setError(res.Err)
		return nil
	}
	current := m.pages.Current()
	if res.SiteUpdated {
		// an open menu goes away with the old bar; it is not closed
		m.mountBar(current)
		if m.verbose {
			m.setInfo("site reloaded")
		}
	}
	if res.PagesUpdated {
		if m.verbose {
			m.setInfo(fmt.Sprintf("reloaded %s", evt.Path))
		}
		return m.loadPageCmd(current, loadRefresh)
	}
	return nil
}
