package nav

import "sort"

// KeyEscape is the key name the host publishes for the escape key.
const KeyEscape = "Escape"

// Target is the element a pointer event landed on.
type Target interface {
	// Attached reports whether the target is still part of the live surface.
	Attached() bool
}

// Region is a named area of the rendered surface, such as the menu boundary.
type Region interface {
	Contains(Target) bool
}

// RegionFunc adapts a function to Region.
type RegionFunc func(Target) bool

func (f RegionFunc) Contains(t Target) bool {
	if f == nil {
		return false
	}
	return f(t)
}

// PointerEvent is a pointer-down notification.
type PointerEvent struct {
	Target Target
}

// KeyEvent is a key-down notification.
type KeyEvent struct {
	Key string
}

// Subscription is released exactly once by its owner.
type Subscription interface {
	Unsubscribe()
}

// Environment is the host surface observed by the engine.
type Environment interface {
	OnScroll(func(offset int)) Subscription
	OnPointerDown(func(PointerEvent)) Subscription
	OnKeyDown(func(KeyEvent)) Subscription
}

// EventKind identifies one of the host event streams.
type EventKind int

const (
	EventScroll EventKind = iota
	EventPointerDown
	EventKeyDown
)

func (k EventKind) String() string {
	switch k {
	case EventScroll:
		return "scroll"
	case EventPointerDown:
		return "pointerdown"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Hub is an in-process Environment. The host publishes into it from its
// update loop; it is not safe for concurrent use.
type Hub struct {
	next    int
	scroll  map[int]func(int)
	pointer map[int]func(PointerEvent)
	key     map[int]func(KeyEvent)
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		scroll:  make(map[int]func(int)),
		pointer: make(map[int]func(PointerEvent)),
		key:     make(map[int]func(KeyEvent)),
	}
}

type hubSubscription struct {
	hub      *Hub
	kind     EventKind
	id       int
	released bool
}

func (s *hubSubscription) Unsubscribe() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.hub.remove(s.kind, s.id)
}

func (h *Hub) subscribe(kind EventKind) *hubSubscription {
	h.next++
	return &hubSubscription{hub: h, kind: kind, id: h.next}
}

func (h *Hub) remove(kind EventKind, id int) {
	switch kind {
	case EventScroll:
		delete(h.scroll, id)
	case EventPointerDown:
		delete(h.pointer, id)
	case EventKeyDown:
		delete(h.key, id)
	}
}

// OnScroll implements Environment.
func (h *Hub) OnScroll(fn func(int)) Subscription {
	sub := h.subscribe(EventScroll)
	h.scroll[sub.id] = fn
	return sub
}

// OnPointerDown implements Environment.
func (h *Hub) OnPointerDown(fn func(PointerEvent)) Subscription {
	sub := h.subscribe(EventPointerDown)
	h.pointer[sub.id] = fn
	return sub
}

// OnKeyDown implements Environment.
func (h *Hub) OnKeyDown(fn func(KeyEvent)) Subscription {
	sub := h.subscribe(EventKeyDown)
	h.key[sub.id] = fn
	return sub
}

// Scroll publishes a scroll offset to every scroll observer.
func (h *Hub) Scroll(offset int) {
	for _, id := range sortedIDs(h.scroll) {
		if fn, ok := h.scroll[id]; ok {
			fn(offset)
		}
	}
}

// PointerDown publishes a pointer-down event. Observers removed while the
// event is being delivered are skipped.
func (h *Hub) PointerDown(target Target) {
	evt := PointerEvent{Target: target}
	for _, id := range sortedIDs(h.pointer) {
		if fn, ok := h.pointer[id]; ok {
			fn(evt)
		}
	}
}

// KeyDown publishes a key-down event.
func (h *Hub) KeyDown(key string) {
	evt := KeyEvent{Key: key}
	for _, id := range sortedIDs(h.key) {
		if fn, ok := h.key[id]; ok {
			fn(evt)
		}
	}
}

// Count reports the live observers for kind.
func (h *Hub) Count(kind EventKind) int {
	switch kind {
	case EventScroll:
		return len(h.scroll)
	case EventPointerDown:
		return len(h.pointer)
	case EventKeyDown:
		return len(h.key)
	default:
		return 0
	}
}

// Total reports the live observers across all kinds.
func (h *Hub) Total() int {
	return len(h.scroll) + len(h.pointer) + len(h.key)
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
