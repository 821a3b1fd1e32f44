package ui

import (
	"sort"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/content"
)

// fakeRegions records marks per frame and reports whatever ids the test
// placed under the pointer.
type fakeRegions struct {
	marking []string
	latest  map[string]bool
	pressed map[string]bool
}

func newFakeRegions() *fakeRegions {
	return &fakeRegions{latest: map[string]bool{}, pressed: map[string]bool{}}
}

func (f *fakeRegions) Mark(id, content string) string {
	f.marking = append(f.marking, id)
	return content
}

func (f *fakeRegions) Scan(view string) string {
	f.latest = make(map[string]bool, len(f.marking))
	for _, id := range f.marking {
		f.latest[id] = true
	}
	f.marking = nil
	return view
}

func (f *fakeRegions) InBounds(id string, _ tea.MouseMsg) bool { return f.pressed[id] }
func (f *fakeRegions) Rendered(id string) bool                  { return f.latest[id] }
func (f *fakeRegions) Close()                                   {}

func (f *fakeRegions) Hits(tea.MouseMsg) []string {
	hits := make([]string, 0, len(f.pressed))
	for id := range f.pressed {
		hits = append(hits, id)
	}
	sort.Strings(hits)
	return hits
}

type fixture struct {
	h       *Harness
	regions *fakeRegions
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	regions := newFakeRegions()
	opts.Regions = regions
	if opts.Style == "" {
		opts.Style = "notty"
	}
	if opts.Height == 0 {
		opts.Height = 30
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	h := NewHarness(m)
	h.Start()
	return &fixture{h: h, regions: regions}
}

func newMobile(t *testing.T) *fixture {
	return newFixture(t, Options{Width: 60})
}

func newDesktop(t *testing.T) *fixture {
	return newFixture(t, Options{Width: 140})
}

func (f *fixture) model() *Model {
	return f.h.Model()
}

// press clicks with the given regions under the pointer.
func (f *fixture) press(ids ...string) {
	f.regions.pressed = map[string]bool{}
	for _, id := range ids {
		f.regions.pressed[id] = true
	}
	f.h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	f.regions.pressed = map[string]bool{}
}

func (f *fixture) key(s string) {
	switch s {
	case "esc":
		f.h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "enter":
		f.h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "up":
		f.h.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		f.h.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "tab":
		f.h.Send(tea.KeyMsg{Type: tea.KeyTab})
	case "pgdown":
		f.h.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	case "shift+tab":
		f.h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	default:
		f.h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func longLibrary() *content.Library {
	return content.NewLibrary(
		content.Page{Path: "/", Title: "Home", Body: "# Home\n\n" + strings.Repeat("a paragraph of text\n\n", 80)},
		content.Page{Path: "/blog", Title: "Blog", Body: "# Blog\n\nposts"},
		content.Page{Path: "/about", Title: "About", Body: "# About\n\nme"},
		content.Page{Path: "/contact", Title: "Contact", Body: "# Contact\n\nmail"},
	)
}
