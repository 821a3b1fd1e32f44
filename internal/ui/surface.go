package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/termfolio/internal/nav"
)

// overlaySurface is a stack of layers drawn above the page, outside the
// normal layout. Each layer is placed by the view before compositing.
type overlaySurface struct {
	layers []*overlayLayer
}

type overlayLayer struct {
	id       string
	content  string
	detached bool
	owner    *overlaySurface
}

func newOverlaySurface() *overlaySurface {
	return &overlaySurface{}
}

// Attach implements nav.Surface.
func (s *overlaySurface) Attach(id string) nav.Layer {
	layer := &overlayLayer{id: id, owner: s}
	s.layers = append(s.layers, layer)
	return layer
}

// Len reports the number of attached layers.
func (s *overlaySurface) Len() int {
	return len(s.layers)
}

func (l *overlayLayer) Set(content string) {
	if l.detached {
		return
	}
	l.content = content
}

func (l *overlayLayer) Detach() {
	if l.detached {
		return
	}
	l.detached = true
	l.content = ""
	layers := l.owner.layers[:0]
	for _, other := range l.owner.layers {
		if other != l {
			layers = append(layers, other)
		}
	}
	l.owner.layers = layers
}

// content returns the text of the layer with the given id.
func (s *overlaySurface) content(id string) string {
	for _, layer := range s.layers {
		if layer.id == id {
			return layer.content
		}
	}
	return ""
}

// composite draws block over base with its top-left corner at (x, y).
// Rows and columns outside base are dropped.
func composite(base, block string, x, y int) string {
	if block == "" {
		return base
	}
	rows := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		rows[row] = overlayLine(rows[row], line, x)
	}
	return strings.Join(rows, "\n")
}

func overlayLine(base, line string, x int) string {
	if x < 0 {
		x = 0
	}
	left := ansi.Truncate(base, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
	return left + line + ansi.ResetStyle + right
}
