package state

import (
	"github.com/atomicstack/termfolio/internal/nav"
	"github.com/atomicstack/termfolio/internal/site"
)

type SiteStore interface {
	Config() *site.Config
	Table() *nav.Table
	// SetConfig replaces the site once its table validates.
	SetConfig(*site.Config) error
}

type siteStore struct {
	config *site.Config
	table  *nav.Table
}

func NewSiteStore(cfg *site.Config) (SiteStore, error) {
	s := &siteStore{}
	if err := s.SetConfig(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *siteStore) Config() *site.Config {
	return s.config
}

func (s *siteStore) Table() *nav.Table {
	return s.table
}

func (s *siteStore) SetConfig(cfg *site.Config) error {
	if cfg == nil {
		cfg = site.Default()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}
	s.config = cfg
	s.table = table
	return nil
}
