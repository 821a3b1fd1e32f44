package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/termfolio/internal/backend"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/state"
	"github.com/atomicstack/termfolio/internal/testutil"
)

func newStores(t *testing.T) (state.PageStore, state.SiteStore) {
	t.Helper()
	lib, err := content.Builtin()
	if err != nil {
		t.Fatalf("builtin pages: %v", err)
	}
	sites, err := state.NewSiteStore(nil)
	if err != nil {
		t.Fatalf("site store: %v", err)
	}
	return state.NewPageStore(lib, "/"), sites
}

func TestHandlePageReloadsLibrary(t *testing.T) {
	dir := t.TempDir()
	pages, sites := newStores(t)
	d := New(pages, sites, dir, "")

	page := testutil.WriteFile(t, dir, "talks.md", "# Talks\n")
	res := d.Handle(backend.Event{Kind: backend.KindPage, Path: page})
	if res.Err != nil || !res.PagesUpdated || res.SiteUpdated {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, ok := pages.Library().Get("/talks"); !ok {
		t.Fatalf("expected new page in library")
	}
}

func TestHandleSiteReloadsTable(t *testing.T) {
	siteFile := testutil.SiteFile(t, "nav:\n  - id: Home\n    destination: /\n  - id: Talks\n    destination: /talks\n")
	pages, sites := newStores(t)
	d := New(pages, sites, "", siteFile)

	res := d.Handle(backend.Event{Kind: backend.KindSite, Path: siteFile})
	if res.Err != nil || !res.SiteUpdated {
		t.Fatalf("unexpected result %+v", res)
	}
	if sites.Table().Len() != 2 || sites.Table().IndexOf("Talks") != 1 {
		t.Fatalf("unexpected table %v", sites.Table().Items())
	}
}

func TestHandleInvalidSiteKeepsPrevious(t *testing.T) {
	siteFile := testutil.SiteFile(t, "nav:\n  - id: Home\n    destination: /\n  - id: Home\n    destination: /again\n")
	pages, sites := newStores(t)
	d := New(pages, sites, "", siteFile)

	res := d.Handle(backend.Event{Kind: backend.KindSite, Path: siteFile})
	if res.Err == nil || res.SiteUpdated {
		t.Fatalf("expected rejected reload, got %+v", res)
	}
	if sites.Table().Len() != 3 {
		t.Fatalf("expected previous table to survive")
	}
}

func TestHandlePassesWatchErrors(t *testing.T) {
	pages, sites := newStores(t)
	d := New(pages, sites, "", "")
	boom := errors.New("boom")
	res := d.Handle(backend.Event{Err: boom})
	if !errors.Is(res.Err, boom) || res.PagesUpdated || res.SiteUpdated {
		t.Fatalf("unexpected result %+v", res)
	}
}
