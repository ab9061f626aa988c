package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Locator    lipgloss.Style

	// Tab strip
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Table of contents
	TOC         lipgloss.Style
	TOCItem     lipgloss.Style
	TOCSelected lipgloss.Style

	// Document list
	DocItem      lipgloss.Style
	DocSelected  lipgloss.Style
	DocSummary   lipgloss.Style
	DocMinimized lipgloss.Style

	// Taskbar
	Taskbar          lipgloss.Style
	TaskbarLabel     lipgloss.Style
	TaskChip         lipgloss.Style
	TaskChipSelected lipgloss.Style

	// Footer
	Footer lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Locator: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Tab: lipgloss.NewStyle().
			Foreground(Colors.DescSelected).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Background(Colors.Primary).
			Padding(0, 1),

		TOC: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(Colors.Muted).
			PaddingRight(1),

		TOCItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TOCSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		DocItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		DocSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		DocSummary: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		DocMinimized: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Taskbar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(Colors.Muted),

		TaskbarLabel: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		TaskChip: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Padding(0, 1),

		TaskChipSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Background(Colors.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
