package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/termfolio/internal/backend"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/format/table"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/site"
	"github.com/atomicstack/termfolio/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SiteFile   string
	ContentDir string
	Path       string
	Width      int
	Height     int
	Breakpoint int
	Style      string
	ShowFooter bool
	Watch      bool
	Verbose    bool
}

// Run loads the site and pages, then runs the Bubble Tea program until the
// user quits or ctx is cancelled. With Watch set, the file watcher runs
// alongside the program and is drained before Run returns.
func Run(ctx context.Context, cfg Config) error {
	siteCfg, err := loadSite(cfg.SiteFile)
	if err != nil {
		return err
	}
	lib, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("load pages: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		if watcher, err = backend.NewWatcher(cfg.ContentDir, cfg.SiteFile, backend.DefaultInterval); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
	}

	model, err := ui.NewModel(ui.Options{
		Site:       siteCfg,
		Library:    lib,
		Path:       cfg.Path,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Breakpoint: cfg.Breakpoint,
		Style:      cfg.Style,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
		ContentDir: cfg.ContentDir,
		SiteFile:   cfg.SiteFile,
	})
	if err != nil {
		if watcher != nil {
			watcher.Stop()
			watcher.Wait()
		}
		return fmt.Errorf("build model: %w", err)
	}
	defer model.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(runCtx))

	g := new(errgroup.Group)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	if watcher != nil {
		g.Go(func() error {
			<-runCtx.Done()
			watcher.Stop()
			watcher.Wait()
			return nil
		})
	}
	err = g.Wait()
	events.App.Stop("exit")
	return err
}

// Routes formats the navigation table of the site file for printing.
func Routes(siteFile string) ([]string, error) {
	siteCfg, err := loadSite(siteFile)
	if err != nil {
		return nil, err
	}
	navTable, err := siteCfg.Table()
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"#", "ID", "DESTINATION", "ICON", "BADGE", "DESCRIPTION"}}
	for i, item := range navTable.Items() {
		rows = append(rows, []string{strconv.Itoa(i + 1), item.ID, item.Destination, item.Icon, item.Badge, item.Description})
	}
	return table.Format(rows, []table.Alignment{table.AlignRight}), nil
}

func loadSite(path string) (*site.Config, error) {
	siteCfg, err := site.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load site: %w", err)
	}
	if err := siteCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site: %w", err)
	}
	return siteCfg, nil
}
