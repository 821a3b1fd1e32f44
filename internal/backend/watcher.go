package backend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

// Kind represents the type of file that changed.
type Kind int

const (
	KindPage Kind = iota
	KindSite
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindSite:
		return "site"
	default:
		return "unknown"
	}
}

// DefaultInterval is the coalescing window used when none is given.
const DefaultInterval = 150 * time.Millisecond

// ErrNothingToWatch is returned when neither a content dir nor a site file
// is configured.
var ErrNothingToWatch = errors.New("backend: nothing to watch")

// Event reports a changed file or a watch error.
type Event struct {
	Kind Kind
	Path string
	Err  error
}

// Watcher observes the content directory and the site file and publishes
// coalesced change events.
type Watcher struct {
	contentDir string
	siteFile   string
	interval   time.Duration

	fs *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching. Either path may be empty. Changes to the same
// file within interval are reported once.
func NewWatcher(contentDir, siteFile string, interval time.Duration) (*Watcher, error) {
	if contentDir == "" && siteFile == "" {
		return nil, ErrNothingToWatch
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{interval: interval, fs: fsw, events: make(chan Event, 16)}
	if contentDir != "" {
		w.contentDir = filepath.Clean(contentDir)
		if err := fsw.Add(w.contentDir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch content dir: %w", err)
		}
	}
	if siteFile != "" {
		w.siteFile = filepath.Clean(siteFile)
		// editors replace files by rename, so the parent is watched
		dir := filepath.Dir(w.siteFile)
		if dir != w.contentDir {
			if err := fsw.Add(dir); err != nil {
				fsw.Close()
				return nil, fmt.Errorf("watch site dir: %w", err)
			}
		}
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of change events. It is closed once the watcher
// has stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) classify(name string) (Kind, bool) {
	name = filepath.Clean(name)
	if w.siteFile != "" && name == w.siteFile {
		return KindSite, true
	}
	if w.contentDir != "" && filepath.Dir(name) == w.contentDir && strings.EqualFold(filepath.Ext(name), ".md") {
		return KindPage, true
	}
	return 0, false
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()

	pending := newCoalescer(w.interval)
	defer pending.stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			kind, ok := w.classify(ev.Name)
			if !ok {
				continue
			}
			events.Watch.Event(kind.String(), ev.Name)
			pending.add(Event{Kind: kind, Path: filepath.Clean(ev.Name)})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Watch.Error(err)
			if !w.emit(Event{Err: err}) {
				return
			}
		case <-pending.ready():
			for _, evt := range pending.drain() {
				if !w.emit(evt) {
					return
				}
			}
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
