package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle     key.Binding
	Escape     key.Binding
	Up         key.Binding
	Down       key.Binding
	Home       key.Binding
	End        key.Binding
	Select     key.Binding
	NextLink   key.Binding
	PrevLink   key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		NextLink:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next link")),
		PrevLink:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev link")),
		ScrollDown: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "scroll down")),
		ScrollUp:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "scroll up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		Top:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		Back:       key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextLink, k.Select, k.ScrollDown, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Escape, k.Up, k.Down, k.Home, k.End, k.Select},
		{k.NextLink, k.PrevLink, k.Back},
		{k.ScrollDown, k.ScrollUp, k.PageDown, k.PageUp, k.Top, k.Bottom},
		{k.Help, k.Quit},
	}
}
