package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding // Open document, restore task or jump to section

	// Window
	NextTab   key.Binding
	PrevTab   key.Binding
	SelectTab key.Binding // 1-9 select a tab by position
	Minimize  key.Binding
	Close     key.Binding
	Back      key.Binding // Step back one history entry

	// Catalog
	SwitchFocus key.Binding // Toggle documents and taskbar
	Dismiss     key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-tab/h", "prev tab"),
		),
		SelectTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select tab"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Close: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x/esc", "close"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "back"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "taskbar"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScreenKeys adapts the KeyMap to the bindings active on one screen.
type ScreenKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp returns keybindings to show in the short help view.
func (s ScreenKeys) ShortHelp() []key.Binding {
	return s.short
}

// FullHelp returns keybindings for the expanded help view.
func (s ScreenKeys) FullHelp() [][]key.Binding {
	return s.full
}

// WindowHelp returns the help bindings for a document window.
func (k KeyMap) WindowHelp() ScreenKeys {
	return ScreenKeys{
		short: []key.Binding{k.NextTab, k.PrevTab, k.Enter, k.Minimize, k.Close, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.NextTab, k.PrevTab, k.SelectTab},           // Tabs
			{k.Up, k.Down, k.Enter, k.PageUp, k.PageDown}, // Sections
			{k.Minimize, k.Close, k.Back},                 // Window
			{k.Help, k.Quit},                              // General
		},
	}
}

// CatalogHelp returns the help bindings for the catalog.
func (k KeyMap) CatalogHelp() ScreenKeys {
	return ScreenKeys{
		short: []key.Binding{k.Up, k.Down, k.Enter, k.SwitchFocus, k.Dismiss, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Enter},    // Navigation
			{k.SwitchFocus, k.Dismiss}, // Taskbar
			{k.Back, k.Help, k.Quit},   // General
		},
	}
}
