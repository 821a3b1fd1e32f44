package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

//go:embed pages/*.md
var builtin embed.FS

// Library is an immutable set of pages keyed by path.
type Library struct {
	pages map[string]Page
	paths []string
}

// NewLibrary indexes pages by path. A later page replaces an earlier one
// with the same path.
func NewLibrary(pages ...Page) *Library {
	lib := &Library{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		lib.pages[p.Path] = p
	}
	lib.paths = make([]string, 0, len(lib.pages))
	for p := range lib.pages {
		lib.paths = append(lib.paths, p)
	}
	sort.Strings(lib.paths)
	return lib
}

// Builtin returns the embedded pages.
func Builtin() (*Library, error) {
	pages, err := readFS(builtin, "pages")
	if err != nil {
		return nil, err
	}
	return NewLibrary(pages...), nil
}

// Load returns the embedded pages overlaid with every *.md file in dir.
// An empty dir loads only the embedded pages.
func Load(dir string) (*Library, error) {
	pages, err := readFS(builtin, "pages")
	if err != nil {
		return nil, err
	}
	if dir != "" {
		extra, err := readDir(dir)
		if err != nil {
			return nil, err
		}
		pages = append(pages, extra...)
	}
	lib := NewLibrary(pages...)
	events.Content.Load(dir, len(lib.paths))
	return lib, nil
}

// LoadFile parses a single page from disk.
func LoadFile(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("read page: %w", err)
	}
	return Parse(path, data)
}

// IsPage reports whether name looks like a page file.
func IsPage(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

func readDir(dir string) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("content dir %s: %w", dir, err)
		}
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	var pages []Page
	for _, entry := range entries {
		if entry.IsDir() || !IsPage(entry.Name()) {
			continue
		}
		page, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func readFS(fsys fs.FS, root string) ([]Page, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read embedded pages: %w", err)
	}
	pages := make([]Page, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsPage(entry.Name()) {
			continue
		}
		name := root + "/" + entry.Name()
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read embedded page: %w", err)
		}
		page, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Get returns the page at path.
func (l *Library) Get(path string) (Page, bool) {
	if l == nil {
		return Page{}, false
	}
	p, ok := l.pages[path]
	return p, ok
}

// Paths lists every page path in sorted order.
func (l *Library) Paths() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

// Pages lists every page ordered by path.
func (l *Library) Pages() []Page {
	if l == nil {
		return nil
	}
	out := make([]Page, 0, len(l.paths))
	for _, p := range l.paths {
		out = append(out, l.pages[p])
	}
	return out
}
