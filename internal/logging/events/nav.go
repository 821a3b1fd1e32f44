package events

import "github.com/atomicstack/termfolio/internal/logging"

type NavTracer struct{}

type PortalTracer struct{}

var (
	Nav    = NavTracer{}
	Portal = PortalTracer{}
)

func (NavTracer) Mount(path, active string) {
	logging.Trace("nav.mount", map[string]interface{}{"path": path, "active": active})
}

func (NavTracer) Unmount() {
	logging.Trace("nav.unmount", nil)
}

func (NavTracer) Phase(phase string, offset int) {
	logging.Trace("nav.phase", map[string]interface{}{"phase": phase, "offset": offset})
}

func (NavTracer) Route(active, source string) {
	logging.Trace("nav.route", map[string]interface{}{"active": active, "source": source})
}

func (NavTracer) MenuOpen() {
	logging.Trace("nav.menu.open", nil)
}

func (NavTracer) MenuClose(reason string) {
	logging.Trace("nav.menu.close", map[string]interface{}{"reason": reason})
}

func (NavTracer) Select(id, destination string) {
	logging.Trace("nav.select", map[string]interface{}{"id": id, "destination": destination})
}

func (NavTracer) SelectUnknown(id string) {
	logging.Trace("nav.select.unknown", map[string]interface{}{"id": id})
}

func (NavTracer) Navigate(destination string) {
	logging.Trace("nav.navigate", map[string]interface{}{"destination": destination})
}

func (NavTracer) Arm() {
	logging.Trace("nav.dismiss.arm", nil)
}

func (NavTracer) Disarm() {
	logging.Trace("nav.dismiss.disarm", nil)
}

func (NavTracer) Dismiss(reason string) {
	logging.Trace("nav.dismiss", map[string]interface{}{"reason": reason})
}

func (PortalTracer) Ready(id string) {
	logging.Trace("portal.ready", map[string]interface{}{"id": id})
}

func (PortalTracer) Mount(id string) {
	logging.Trace("portal.mount", map[string]interface{}{"id": id})
}

func (PortalTracer) Close(id string) {
	logging.Trace("portal.close", map[string]interface{}{"id": id})
}
