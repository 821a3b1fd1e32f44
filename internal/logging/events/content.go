package events

import "github.com/atomicstack/termfolio/internal/logging"

type ContentTracer struct{}

type WatchTracer struct{}

var (
	Content = ContentTracer{}
	Watch   = WatchTracer{}
)

func (ContentTracer) Load(dir string, pages int) {
	logging.Trace("content.load", map[string]interface{}{"dir": dir, "pages": pages})
}

func (ContentTracer) Render(path string, width int) {
	logging.Trace("content.render", map[string]interface{}{"path": path, "width": width})
}

func (ContentTracer) Missing(path, suggestion string) {
	logging.Trace("content.missing", map[string]interface{}{"path": path, "suggestion": suggestion})
}

func (WatchTracer) Event(kind, path string) {
	logging.Trace("watch.event", map[string]interface{}{"kind": kind, "path": path})
}

func (WatchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("watch.error", map[string]interface{}{"error": err.Error()})
}
