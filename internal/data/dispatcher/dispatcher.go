package dispatcher

import (
	"fmt"

	"github.com/atomicstack/termfolio/internal/backend"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/site"
	"github.com/atomicstack/termfolio/internal/state"
)

type Result struct {
	PagesUpdated bool
	SiteUpdated  bool
	// Err is set when a reload failed; the stores keep their previous data.
	Err error
}

type Dispatcher struct {
	pages      state.PageStore
	site       state.SiteStore
	contentDir string
	siteFile   string
}

func New(p state.PageStore, s state.SiteStore, contentDir, siteFile string) *Dispatcher {
	return &Dispatcher{pages: p, site: s, contentDir: contentDir, siteFile: siteFile}
}

// Handle reloads whatever evt touched. Pages are reloaded as a whole so a
// deleted override falls back to the built-in page.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindPage:
		lib, err := content.Load(d.contentDir)
		if err != nil {
			res.Err = fmt.Errorf("reload pages: %w", err)
			return res
		}
		d.pages.SetLibrary(lib)
		res.PagesUpdated = true
	case backend.KindSite:
		cfg, err := site.Load(d.siteFile)
		if err != nil {
			res.Err = fmt.Errorf("reload site: %w", err)
			return res
		}
		if err := d.site.SetConfig(cfg); err != nil {
			res.Err = fmt.Errorf("reload site: %w", err)
			return res
		}
		res.SiteUpdated = true
	}
	return res
}
