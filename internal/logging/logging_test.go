package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Use(zap.New(core))
	t.Cleanup(restore)
	t.Cleanup(func() { SetTraceEnabled(false) })
	return logs
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	logs := observe(t)
	SetTraceEnabled(false)
	Trace("nav.menu.open", nil)
	if n := logs.Len(); n != 0 {
		t.Fatalf("expected no entries with tracing disabled, got %d", n)
	}
}

func TestTraceIncludesEventAndPayload(t *testing.T) {
	logs := observe(t)
	SetTraceEnabled(true)
	Trace("nav.select", map[string]interface{}{"id": "Blog"})
	entries := logs.FilterField(zap.String("event", "nav.select")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one nav.select entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	payload, ok := ctx["payload"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected payload map, got %#v", ctx["payload"])
	}
	if payload["id"] != "Blog" {
		t.Fatalf("expected payload id Blog, got %v", payload["id"])
	}
}

func TestErrorIgnoresNil(t *testing.T) {
	logs := observe(t)
	Error(nil)
	Error(errors.New("boom"))
	if n := logs.FilterMessage("error").Len(); n != 1 {
		t.Fatalf("expected one error entry, got %d", n)
	}
}

func TestConfigureWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })
	SetTraceEnabled(true)
	t.Cleanup(func() { SetTraceEnabled(false) })

	Trace("app.start", map[string]interface{}{"cwd": dir})
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), `"event":"app.start"`) {
		t.Fatalf("expected app.start entry, got %s", data)
	}
}
