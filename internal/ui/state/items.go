package state

import "github.com/atomicstack/termfolio/internal/nav"

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []nav.Item) []nav.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]nav.Item, len(items))
	copy(dup, items)
	return dup
}
