// Package site loads the portfolio's static navigation table and header
// metadata.
package site

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/termfolio/internal/nav"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "TERMFOLIO_SITE_"

// Brand is the logo block at the left of the header.
type Brand struct {
	Initials string `koanf:"initials"`
	Name     string `koanf:"name"`
}

// Link is one navigation item as written in the site file.
type Link struct {
	ID          string `koanf:"id"`
	Label       string `koanf:"label"`
	Destination string `koanf:"destination"`
	Icon        string `koanf:"icon"`
	Description string `koanf:"description"`
	Badge       string `koanf:"badge"`
}

// Social is an external profile link.
type Social struct {
	Label string `koanf:"label"`
	URL   string `koanf:"url"`
	Icon  string `koanf:"icon"`
}

// Contact is the call-to-action button.
type Contact struct {
	Label string `koanf:"label"`
	Path  string `koanf:"path"`
}

// Config is the site file.
type Config struct {
	Brand   Brand    `koanf:"brand"`
	Nav     []Link   `koanf:"nav"`
	Social  []Social `koanf:"social"`
	Contact Contact  `koanf:"contact"`
}

// Default returns the built-in site.
func Default() *Config {
	return &Config{
		Brand: Brand{Initials: "PR", Name: "Pritto Ruban"},
		Nav: []Link{
			{ID: "Home", Label: "Home", Destination: "/", Icon: "home", Description: "Welcome to my portfolio"},
			{ID: "Blog", Label: "Blog", Destination: "/blog", Icon: "article", Description: "My thoughts and insights", Badge: "New"},
			{ID: "About", Label: "About", Destination: "/about", Icon: "user", Description: "Learn about me"},
		},
		Social: []Social{
			{Label: "GitHub", URL: "https://github.com/prittoruban", Icon: "github"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/prittoruban", Icon: "linkedin"},
		},
		Contact: Contact{Label: "Contact", Path: "/contact"},
	}
}

// Load reads the site file at path, then overlays TERMFOLIO_SITE_*
// environment variables. Sections left empty fall back to the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading site %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing site %s: %w", path, err)
		}
	}

	// TERMFOLIO_SITE_BRAND_NAME -> brand.name
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading site env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling site: %w", err)
	}
	cfg.applyDefaults(Default())
	return cfg, nil
}

func (c *Config) applyDefaults(def *Config) {
	if c.Brand.Initials == "" {
		c.Brand.Initials = def.Brand.Initials
	}
	if c.Brand.Name == "" {
		c.Brand.Name = def.Brand.Name
	}
	if len(c.Nav) == 0 {
		c.Nav = append([]Link(nil), def.Nav...)
	}
	if len(c.Social) == 0 {
		c.Social = append([]Social(nil), def.Social...)
	}
	if c.Contact.Label == "" {
		c.Contact.Label = def.Contact.Label
	}
	if c.Contact.Path == "" {
		c.Contact.Path = def.Contact.Path
	}
}

// Table builds the navigation table in file order.
func (c *Config) Table() (*nav.Table, error) {
	items := make([]nav.Item, 0, len(c.Nav))
	for _, link := range c.Nav {
		label := link.Label
		if label == "" {
			label = link.ID
		}
		items = append(items, nav.Item{
			ID:          link.ID,
			Label:       label,
			Destination: link.Destination,
			Icon:        link.Icon,
			Description: link.Description,
			Badge:       link.Badge,
		})
	}
	table, err := nav.NewTable(items...)
	if err != nil {
		return nil, fmt.Errorf("site navigation: %w", err)
	}
	return table, nil
}

// Validate checks that the site can be rendered.
func (c *Config) Validate() error {
	if _, err := c.Table(); err != nil {
		return err
	}
	for _, link := range c.Nav {
		if !strings.HasPrefix(link.Destination, "/") {
			return fmt.Errorf("nav item %q: destination %q must start with /", link.ID, link.Destination)
		}
	}
	if !strings.HasPrefix(c.Contact.Path, "/") {
		return fmt.Errorf("contact path %q must start with /", c.Contact.Path)
	}
	for i, s := range c.Social {
		if strings.TrimSpace(s.URL) == "" {
			return fmt.Errorf("social link %d (%s): url is required", i, s.Label)
		}
	}
	return nil
}
