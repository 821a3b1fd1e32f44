package nav

import "github.com/atomicstack/termfolio/internal/logging/events"

// DismissReason records which trigger produced a dismiss request.
type DismissReason string

const (
	DismissOutside DismissReason = "outside"
	DismissEscape  DismissReason = "escape"
)

// DismissalListener observes pointer and key events while armed and reports
// outside interaction or the escape key as a single dismiss request.
type DismissalListener struct {
	env       Environment
	boundary  Region
	toggle    Region
	onDismiss func(DismissReason)

	pointer Subscription
	key     Subscription
}

// NewDismissalListener wires a listener for the given boundary and toggle
// regions. It starts disarmed.
func NewDismissalListener(env Environment, boundary, toggle Region, onDismiss func(DismissReason)) *DismissalListener {
	return &DismissalListener{
		env:       env,
		boundary:  boundary,
		toggle:    toggle,
		onDismiss: onDismiss,
	}
}

// Armed reports whether the listener currently holds its subscriptions.
func (l *DismissalListener) Armed() bool {
	return l.pointer != nil || l.key != nil
}

// Arm subscribes to pointer and key events. Arming an armed listener does
// nothing.
func (l *DismissalListener) Arm() {
	if l.Armed() || l.env == nil {
		return
	}
	l.pointer = l.env.OnPointerDown(l.handlePointer)
	l.key = l.env.OnKeyDown(l.handleKey)
	events.Nav.Arm()
}

// Disarm releases both subscriptions. Disarming a disarmed listener does
// nothing.
func (l *DismissalListener) Disarm() {
	if !l.Armed() {
		return
	}
	if l.pointer != nil {
		l.pointer.Unsubscribe()
		l.pointer = nil
	}
	if l.key != nil {
		l.key.Unsubscribe()
		l.key = nil
	}
	events.Nav.Disarm()
}

// Outside reports whether target lies outside both the boundary and the
// toggle region. Detached and nil targets count as outside.
func (l *DismissalListener) Outside(target Target) bool {
	if target == nil || !target.Attached() {
		return true
	}
	if l.boundary != nil && l.boundary.Contains(target) {
		return false
	}
	if l.toggle != nil && l.toggle.Contains(target) {
		return false
	}
	return true
}

func (l *DismissalListener) handlePointer(evt PointerEvent) {
	if !l.Armed() || !l.Outside(evt.Target) {
		return
	}
	l.dismiss(DismissOutside)
}

func (l *DismissalListener) handleKey(evt KeyEvent) {
	if !l.Armed() || evt.Key != KeyEscape {
		return
	}
	l.dismiss(DismissEscape)
}

func (l *DismissalListener) dismiss(reason DismissReason) {
	events.Nav.Dismiss(string(reason))
	if l.onDismiss != nil {
		l.onDismiss(reason)
	}
}
