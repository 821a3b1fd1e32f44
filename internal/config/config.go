package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/content"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
	// Routes prints the navigation table and exits.
	Routes bool
}

const (
	envSiteFile   = "TERMFOLIO_SITE"
	envContentDir = "TERMFOLIO_CONTENT"
	envPath       = "TERMFOLIO_PATH"
	envWidth      = "TERMFOLIO_WIDTH"
	envHeight     = "TERMFOLIO_HEIGHT"
	envBreakpoint = "TERMFOLIO_BREAKPOINT"
	envStyle      = "TERMFOLIO_STYLE"
	envShowFooter = "TERMFOLIO_FOOTER"
	envWatch      = "TERMFOLIO_WATCH"
	envVerbose    = "TERMFOLIO_VERBOSE"
	envTrace      = "TERMFOLIO_TRACE"
	envLogFile    = "TERMFOLIO_LOG_FILE"
)

const defaultBreakpoint = 72

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termfolio", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	siteFile := fs.String("site", envOrDefault(env, envSiteFile, ""), "path to the site file (brand, navigation, social links)")
	contentDir := fs.String("content", envOrDefault(env, envContentDir, ""), "directory of markdown pages overriding the built-in ones")
	path := fs.String("path", envOrDefault(env, envPath, "/"), "location shown at startup")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	breakpoint := fs.Int("breakpoint", envOrInt(env, envBreakpoint, defaultBreakpoint), "width below which the collapsible menu replaces inline links")
	style := fs.String("style", envOrDefault(env, envStyle, content.StyleAuto), "markdown style: "+strings.Join(content.Styles, ", "))
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload pages and the site file when they change")
	routes := fs.Bool("routes", false, "print the navigation table and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print status messages for reloads and link presses")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SiteFile:   *siteFile,
			ContentDir: *contentDir,
			Path:       *path,
			Width:      *width,
			Height:     *height,
			Breakpoint: *breakpoint,
			Style:      *style,
			ShowFooter: *footer,
			Watch:      *watch,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
			Routes:  *routes,
		},
		Flags: map[string]string{
			"site":       *siteFile,
			"content":    *contentDir,
			"path":       *path,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"breakpoint": strconv.Itoa(*breakpoint),
			"style":      *style,
			"footer":     strconv.FormatBool(*footer),
			"watch":      strconv.FormatBool(*watch),
			"routes":     strconv.FormatBool(*routes),
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the values flag parsing cannot.
func Validate(cfg Config) error {
	var errs []error
	if !strings.HasPrefix(cfg.App.Path, "/") {
		errs = append(errs, fmt.Errorf("path must start with / (got %q)", cfg.App.Path))
	}
	if cfg.App.Breakpoint <= 0 {
		errs = append(errs, fmt.Errorf("breakpoint must be > 0 (got %d)", cfg.App.Breakpoint))
	}
	if !content.ValidStyle(cfg.App.Style) {
		errs = append(errs, fmt.Errorf("unknown style %q", cfg.App.Style))
	}
	if cfg.App.Watch && cfg.App.ContentDir == "" && cfg.App.SiteFile == "" {
		errs = append(errs, errors.New("watch needs --content or --site"))
	}
	return errors.Join(errs...)
}
