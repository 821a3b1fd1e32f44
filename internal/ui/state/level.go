package state

import "github.com/atomicstack/termfolio/internal/nav"

// Level tracks the cursor and scroll window over the collapsible menu's
// items.
type Level struct {
	ID             string
	Items          []nav.Item
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id string, items []nav.Item) *Level {
	l := &Level{ID: id}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (nav.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return nav.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the items, keeping the cursor on the same id when it
// survives the update.
func (l *Level) UpdateItems(items []nav.Item) {
	var keep string
	if item, ok := l.Current(); ok {
		keep = item.ID
	}
	l.Items = CloneItems(items)
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	} else if l.Cursor >= len(l.Items) || l.Cursor < 0 {
		l.Cursor = 0
	}
	if len(l.Items) == 0 || l.ViewportOffset > len(l.Items)-1 || l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
