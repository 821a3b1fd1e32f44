package nav

import (
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/google/uuid"
)

// Surface is a detached top-level render target outside the normal layout.
type Surface interface {
	Attach(id string) Layer
}

// Layer is a single mounted slot on a Surface.
type Layer interface {
	Set(content string)
	Detach()
}

// Portal renders overlay content into a Surface once the host reports that
// a live surface exists. Before that every Render is dropped.
type Portal struct {
	id      string
	surface Surface
	ready   bool
	closed  bool
	layer   Layer
}

// NewPortal returns a portal waiting for its ready signal.
func NewPortal(surface Surface) *Portal {
	return &Portal{id: uuid.NewString(), surface: surface}
}

// ID identifies the portal's layer on the surface.
func (p *Portal) ID() string {
	return p.id
}

// Ready fires the one-time ready signal and mounts the layer. Later calls
// reuse the mounted layer.
func (p *Portal) Ready() {
	if p.ready || p.closed {
		return
	}
	p.ready = true
	events.Portal.Ready(p.id)
	if p.surface == nil {
		return
	}
	p.layer = p.surface.Attach(p.id)
	events.Portal.Mount(p.id)
}

// IsReady reports whether the ready signal has fired.
func (p *Portal) IsReady() bool {
	return p.ready
}

// Render pushes content to the mounted layer. It reports false, and renders
// nothing, until the portal is ready.
func (p *Portal) Render(content string) bool {
	if !p.ready || p.layer == nil {
		return false
	}
	p.layer.Set(content)
	return true
}

// Close detaches the layer for good.
func (p *Portal) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if p.layer != nil {
		p.layer.Detach()
		p.layer = nil
		events.Portal.Close(p.id)
	}
}
