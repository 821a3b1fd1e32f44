package content

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

// StyleAuto picks a dark or light style from the terminal background.
const StyleAuto = "auto"

// MinWidth is the narrowest wrap width the renderer accepts.
const MinWidth = 20

// Styles lists the accepted style names.
var Styles = []string{StyleAuto, "ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

// ValidStyle reports whether name is one of Styles.
func ValidStyle(name string) bool {
	return slices.Contains(Styles, name)
}

// Renderer turns pages into styled terminal text at a fixed wrap width.
type Renderer struct {
	style string
	width int
	term  *glamour.TermRenderer
}

// NewRenderer builds a renderer for style wrapping at width.
func NewRenderer(style string, width int) (*Renderer, error) {
	if style == "" {
		style = StyleAuto
	}
	if !ValidStyle(style) {
		return nil, fmt.Errorf("unknown style %q (want one of %s)", style, strings.Join(Styles, ", "))
	}
	r := &Renderer{style: style}
	if err := r.Resize(width); err != nil {
		return nil, err
	}
	return r, nil
}

// Style returns the style name.
func (r *Renderer) Style() string {
	return r.style
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Resize rebuilds the renderer when width changes.
func (r *Renderer) Resize(width int) error {
	if width < MinWidth {
		width = MinWidth
	}
	if r.term != nil && width == r.width {
		return nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if r.style == StyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.style))
	}
	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("build renderer: %w", err)
	}
	r.term = term
	r.width = width
	return nil
}

// Render styles the page body.
func (r *Renderer) Render(p Page) (string, error) {
	out, err := r.term.Render(p.Body)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", p.Path, err)
	}
	events.Content.Render(p.Path, r.width)
	return strings.TrimRight(out, "\n"), nil
}
