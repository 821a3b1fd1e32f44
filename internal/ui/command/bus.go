package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

// Request encapsulates a unit of work queued by the UI, such as loading
// the page behind a navigation intent.
type Request struct {
	ID    string
	Label string
	Run   func() tea.Msg
}

// Bus runs UI requests off the update loop.
type Bus struct {
	queued int
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Queued reports how many requests have been handed to Execute.
func (b *Bus) Queued() int {
	return b.queued
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	b.queued++
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Run()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
