package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/termfolio/internal/nav"
	"github.com/atomicstack/termfolio/internal/theme"
)

const (
	menuMaxWidth = 44
	menuMarker   = "›"
	activeMarker = "•"
)

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	rows := []string{m.headerRow(), m.secondRow(), m.viewport.View(), m.statusRow()}
	if m.showFooter {
		m.help.Width = m.width
		rows = append(rows, render(styles.Footer, m.help.View(m.keys)))
	}
	view := strings.Join(rows, "\n")

	// the menu is drawn through the portal; Render is dropped until the
	// portal is ready, and an empty layer composites nothing.
	menu := ""
	if m.layout == LayoutMobile && m.presentation.MenuOpen {
		menu = m.menuBox()
	}
	portal := m.bar.Portal()
	if portal.Render(menu) {
		block := m.surface.content(portal.ID())
		x := m.width - lipgloss.Width(block)
		if x < 0 {
			x = 0
		}
		view = composite(view, block, x, headerHeight)
	}
	return m.regions.Scan(view)
}

func (m *Model) headerStyle() *lipgloss.Style {
	if m.presentation.Elevated {
		return styles.HeaderElevated
	}
	return styles.HeaderTop
}

// headerRow lays out brand on the left and links or the toggle on the right.
func (m *Model) headerRow() string {
	cfg := m.sites.Config()
	brand := m.regions.Mark(zoneBrand, render(styles.Brand, cfg.Brand.Initials)+" "+render(styles.BrandName, cfg.Brand.Name))

	var right string
	if m.layout == LayoutDesktop {
		right = m.desktopLinks() + "  " + m.socialLinks() + " " + m.regions.Mark(zoneContact, render(styles.Contact, cfg.Contact.Label))
	} else {
		right = m.toggleButton()
	}

	inner := m.width - 2
	gap := inner - lipgloss.Width(brand) - lipgloss.Width(right)
	var row string
	if gap < 1 {
		row = fitWidth(brand+" "+right, inner)
	} else {
		row = brand + strings.Repeat(" ", gap) + right
	}
	style := m.headerStyle()
	if style == nil {
		return row
	}
	return style.Width(m.width).Render(row)
}

func (m *Model) desktopLinks() string {
	parts := make([]string, 0, len(m.presentation.Items))
	for _, view := range m.presentation.Items {
		parts = append(parts, m.regions.Mark(zoneLinkPrefix+view.ID, m.linkLabel(view)))
	}
	return strings.Join(parts, " ")
}

func (m *Model) linkLabel(view nav.ItemView) string {
	style := styles.Link
	label := view.Label
	switch {
	case view.Active:
		style = styles.LinkActive
		label = render(styles.ActiveMarker, activeMarker) + label
	case view.ID == m.focus || view.ID == m.hovered:
		style = styles.LinkFocused
	}
	out := render(style, " "+label+" ")
	if view.Badge != "" {
		out += render(styles.Badge, view.Badge)
	}
	return out
}

func (m *Model) socialLinks() string {
	cfg := m.sites.Config()
	parts := make([]string, 0, len(cfg.Social))
	for i, social := range cfg.Social {
		glyph := theme.Icon(social.Icon)
		if social.Icon == "" {
			glyph = social.Label
		}
		link := ansi.SetHyperlink(social.URL) + render(styles.Social, glyph) + ansi.ResetHyperlink()
		parts = append(parts, m.regions.Mark(zoneSocialPrefix+strconv.Itoa(i), link))
	}
	return strings.Join(parts, " ")
}

func (m *Model) toggleButton() string {
	if m.presentation.MenuOpen {
		return m.regions.Mark(zoneToggle, render(styles.ToggleOpen, theme.Icon("close")))
	}
	return m.regions.Mark(zoneToggle, render(styles.Toggle, theme.Icon("menu")))
}

// secondRow carries the tooltip for the focused or hovered desktop link,
// otherwise the elevation rule.
func (m *Model) secondRow() string {
	if m.layout == LayoutDesktop {
		if anchor := m.tooltipAnchor(); anchor != "" {
			if text := m.tooltips[anchor]; text != "" {
				return fitWidth(strings.Repeat(" ", m.tooltipColumn(anchor))+render(styles.Tooltip, text), m.width)
			}
		}
	}
	if m.presentation.Elevated {
		return render(styles.HeaderRule, strings.Repeat("─", max(m.width, 0)))
	}
	return ""
}

func (m *Model) tooltipAnchor() string {
	if m.hovered != "" {
		return m.hovered
	}
	return m.focus
}

// tooltipColumn estimates where the anchor link starts on the header row.
func (m *Model) tooltipColumn(anchor string) int {
	cfg := m.sites.Config()
	linksWidth := 0
	col := -1
	for _, view := range m.presentation.Items {
		if view.ID == anchor {
			col = linksWidth
		}
		linksWidth += lipgloss.Width(m.linkLabel(view)) + 1
	}
	if col < 0 {
		return 1
	}
	right := linksWidth - 1 + 2 + lipgloss.Width(m.socialLinks()) + 1 + lipgloss.Width(render(styles.Contact, cfg.Contact.Label))
	start := m.width - 1 - right
	if start < 1 {
		start = 1
	}
	return start + col
}

// menuBox renders the collapsible menu for the overlay.
func (m *Model) menuBox() string {
	cfg := m.sites.Config()
	width := min(m.width-2, menuMaxWidth)
	if width < 16 {
		width = 16
	}
	inner := width - 4
	visible := m.menuVisibleItems()
	m.menu.EnsureCursorVisible(visible)
	first := m.menu.ViewportOffset
	last := min(first+visible, len(m.presentation.Items))
	rows := make([]string, 0, 2*visible+3)
	for i := first; i < last; i++ {
		view := m.presentation.Items[i]
		rows = append(rows, m.regions.Mark(zoneItemPrefix+view.ID, m.menuItem(i, view, inner)))
	}
	rows = append(rows, render(styles.HeaderRule, strings.Repeat("─", inner)))
	rows = append(rows, m.socialLinks())
	label := "Contact Me"
	if cfg.Contact.Label != "" && cfg.Contact.Label != "Contact" {
		label = cfg.Contact.Label
	}
	rows = append(rows, m.regions.Mark(zoneMenuContact, render(styles.Contact, theme.Icon("mail")+" "+label)))
	box := strings.Join(rows, "\n")
	if styles.Menu != nil {
		box = styles.Menu.Width(width - 2).Render(box)
	}
	return m.regions.Mark(zoneMenu, box)
}

// menuVisibleItems is how many items fit below the header. Each item takes
// two rows; the rule, socials, contact row and border take five more.
func (m *Model) menuVisibleItems() int {
	return max((m.height-headerHeight-5)/2, 1)
}

func (m *Model) menuItem(idx int, view nav.ItemView, width int) string {
	marker := " "
	style := styles.MenuItem
	if view.Active {
		marker = activeMarker
		style = styles.MenuItemActive
	}
	if idx == m.menu.Cursor {
		marker = menuMarker
		style = styles.MenuItemCursor
	}
	badge := ""
	if view.Badge != "" {
		badge = " " + render(styles.Badge, view.Badge)
	}
	title := fmt.Sprintf("%s %s %d %s", marker, theme.Icon(view.Icon), idx+1, view.Label)
	line := render(style, fitWidth(title, width-lipgloss.Width(badge))) + badge
	if view.Description == "" {
		return line
	}
	return line + "\n" + render(styles.MenuDescription, fitWidth("    "+view.Description, width))
}

func (m *Model) statusRow() string {
	if m.errMsg != "" {
		return render(styles.Error, fitWidth(m.errMsg, m.width))
	}
	if info := m.currentInfo(); info != "" {
		return render(styles.Info, fitWidth(info, m.width))
	}
	status := fmt.Sprintf("%s  %3.f%%", m.pages.Current(), m.viewport.ScrollPercent()*100)
	return render(styles.Footer, fitWidth(status, m.width))
}

// fitWidth truncates ANSI text to width cells.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
