package events

import "github.com/atomicstack/termfolio/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Layout(layout string, width, height int) {
	logging.Trace("ui.layout", map[string]interface{}{"layout": layout, "width": width, "height": height})
}

func (UITracer) MenuCursor(cursor int) {
	logging.Trace("ui.menu.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) LinkFocus(id string) {
	logging.Trace("ui.link.focus", map[string]interface{}{"id": id})
}

func (UITracer) Click(region string, x, y int) {
	logging.Trace("ui.click", map[string]interface{}{"region": region, "x": x, "y": y})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
