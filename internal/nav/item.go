package nav

import (
	"errors"
	"fmt"
	"strings"
)

// Item is a single static navigation destination.
type Item struct {
	ID          string
	Label       string
	Destination string
	Icon        string
	Description string
	Badge       string
}

var (
	ErrEmptyID          = errors.New("nav item id is empty")
	ErrDuplicateID      = errors.New("duplicate nav item id")
	ErrEmptyDestination = errors.New("nav item destination is empty")
)

// Table is the ordered, immutable set of navigation items.
type Table struct {
	items []Item
	index map[string]int
}

// NewTable validates items and freezes them in declaration order.
func NewTable(items ...Item) (*Table, error) {
	t := &Table{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrEmptyID)
		}
		if _, dup := t.index[id]; dup {
			return nil, fmt.Errorf("item %q: %w", id, ErrDuplicateID)
		}
		if strings.TrimSpace(item.Destination) == "" {
			return nil, fmt.Errorf("item %q: %w", id, ErrEmptyDestination)
		}
		item.ID = id
		t.index[id] = len(t.items)
		t.items = append(t.items, item)
	}
	return t, nil
}

// MustTable is NewTable for statically known items.
func MustTable(items ...Item) *Table {
	t, err := NewTable(items...)
	if err != nil {
		panic(err)
	}
	return t
}

// Items returns a copy of the items in render order.
func (t *Table) Items() []Item {
	if t == nil {
		return nil
	}
	dup := make([]Item, len(t.items))
	copy(dup, t.items)
	return dup
}

// Len reports the number of items.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// At returns the item at position i.
func (t *Table) At(i int) (Item, bool) {
	if t == nil || i < 0 || i >= len(t.items) {
		return Item{}, false
	}
	return t.items[i], true
}

// Find looks an item up by id.
func (t *Table) Find(id string) (Item, bool) {
	if t == nil {
		return Item{}, false
	}
	idx, ok := t.index[id]
	if !ok {
		return Item{}, false
	}
	return t.items[idx], true
}

// IndexOf returns the render position of id, or -1.
func (t *Table) IndexOf(id string) int {
	if t == nil {
		return -1
	}
	if idx, ok := t.index[id]; ok {
		return idx
	}
	return -1
}

// Destinations lists every destination in render order.
func (t *Table) Destinations() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.items))
	for _, item := range t.items {
		out = append(out, item.Destination)
	}
	return out
}
