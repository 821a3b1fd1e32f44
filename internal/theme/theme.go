package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Brand           *lipgloss.Style
	BrandName       *lipgloss.Style
	HeaderTop       *lipgloss.Style
	HeaderElevated  *lipgloss.Style
	HeaderRule      *lipgloss.Style
	Link            *lipgloss.Style
	LinkActive      *lipgloss.Style
	LinkFocused     *lipgloss.Style
	ActiveMarker    *lipgloss.Style
	Badge           *lipgloss.Style
	Tooltip         *lipgloss.Style
	Toggle          *lipgloss.Style
	ToggleOpen      *lipgloss.Style
	Menu            *lipgloss.Style
	MenuItem        *lipgloss.Style
	MenuItemActive  *lipgloss.Style
	MenuItemCursor  *lipgloss.Style
	MenuDescription *lipgloss.Style
	Social          *lipgloss.Style
	Contact         *lipgloss.Style
	Error           *lipgloss.Style
	Info            *lipgloss.Style
	Footer          *lipgloss.Style
}

var defaultStyles = Styles{
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	BrandName: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	HeaderTop: ptr(
		lipgloss.NewStyle().Padding(0, 1),
	),
	HeaderElevated: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("235")).Padding(0, 1),
	),
	HeaderRule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	LinkActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Bold(true),
	),
	LinkFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true),
	),
	ActiveMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	Tooltip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")).Padding(0, 1),
	),
	Toggle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	ToggleOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
	),
	Menu: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("234")).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	MenuItemActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	MenuItemCursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	MenuDescription: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	Social: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Contact: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

var icons = map[string]string{
	"home":     "⌂",
	"article":  "✎",
	"user":     "☺",
	"mail":     "✉",
	"github":   "gh",
	"linkedin": "in",
	"menu":     "☰",
	"close":    "✕",
}

// Icon returns the glyph for a named icon. Unknown names render as a bullet.
func Icon(name string) string {
	if glyph, ok := icons[name]; ok && glyph != "" {
		return glyph
	}
	return "•"
}
