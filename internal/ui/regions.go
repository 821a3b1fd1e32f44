package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/atomicstack/termfolio/internal/nav"
)

const (
	zoneMenu         = "nav:menu"
	zoneToggle       = "nav:toggle"
	zoneContact      = "nav:contact"
	zoneMenuContact  = "nav:menu-contact"
	zoneBrand        = "nav:brand"
	zoneItemPrefix   = "nav:item:"
	zoneLinkPrefix   = "nav:link:"
	zoneSocialPrefix = "nav:social:"
)

// Regions marks clickable areas while a frame is rendered and hit tests
// pointer events against them afterwards.
type Regions interface {
	Mark(id, content string) string
	// Scan finishes a frame. Only ids marked since the previous Scan are
	// rendered afterwards.
	Scan(view string) string
	InBounds(id string, msg tea.MouseMsg) bool
	Rendered(id string) bool
	// Hits lists the known ids containing the pointer.
	Hits(msg tea.MouseMsg) []string
	Close()
}

type zoneRegions struct {
	manager *zone.Manager
	marking []string
	latest  map[string]bool
	// known holds every id ever marked, in first-seen order. Stale zones
	// still hit test so a press on them is reported as detached.
	known []string
	seen  map[string]bool
}

func newZoneRegions() *zoneRegions {
	return &zoneRegions{manager: zone.New(), latest: map[string]bool{}, seen: map[string]bool{}}
}

func (z *zoneRegions) Mark(id, content string) string {
	z.marking = append(z.marking, id)
	if !z.seen[id] {
		z.seen[id] = true
		z.known = append(z.known, id)
	}
	return z.manager.Mark(id, content)
}

func (z *zoneRegions) Scan(view string) string {
	z.latest = make(map[string]bool, len(z.marking))
	for _, id := range z.marking {
		z.latest[id] = true
	}
	z.marking = nil
	return z.manager.Scan(view)
}

func (z *zoneRegions) InBounds(id string, msg tea.MouseMsg) bool {
	info := z.manager.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}

func (z *zoneRegions) Rendered(id string) bool {
	return z.latest[id]
}

func (z *zoneRegions) Hits(msg tea.MouseMsg) []string {
	var hits []string
	for _, id := range z.known {
		if z.InBounds(id, msg) {
			hits = append(hits, id)
		}
	}
	return hits
}

func (z *zoneRegions) Close() {
	z.manager.Close()
}

// pointerTarget is what a left press landed on: the regions containing it
// at the time of the press.
type pointerTarget struct {
	hits    []string
	regions Regions
}

// Attached reports whether every region under the pointer is still part of
// the latest frame.
func (t pointerTarget) Attached() bool {
	if t.regions == nil {
		return false
	}
	for _, id := range t.hits {
		if !t.regions.Rendered(id) {
			return false
		}
	}
	return true
}

func (t pointerTarget) in(id string) bool {
	return slices.Contains(t.hits, id)
}

// first returns the first hit with prefix, minus the prefix.
func (t pointerTarget) first(prefix string) (string, bool) {
	for _, hit := range t.hits {
		if rest, ok := strings.CutPrefix(hit, prefix); ok && rest != "" {
			return rest, true
		}
	}
	return "", false
}

// zoneRegion adapts a region id into the engine's Region.
func zoneRegion(id string) nav.Region {
	return nav.RegionFunc(func(target nav.Target) bool {
		pt, ok := target.(pointerTarget)
		return ok && pt.in(id)
	})
}
