// Package tui provides the terminal user interface for docwin.
package tui

// Focus represents which catalog pane receives list navigation.
type Focus int

const (
	FocusDocuments Focus = iota // Document list
	FocusTaskbar                // Minimized task chips
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusDocuments:
		return "documents"
	case FocusTaskbar:
		return "taskbar"
	default:
		return "unknown"
	}
}

// Toggle returns the other pane.
func (f Focus) Toggle() Focus {
	if f == FocusTaskbar {
		return FocusDocuments
	}
	return FocusTaskbar
}

// Screen is what the current route shows.
type Screen int

const (
	ScreenCatalog Screen = iota // Catalog and taskbar
	ScreenWindow                // A mounted document window
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenCatalog:
		return "catalog"
	case ScreenWindow:
		return "window"
	default:
		return "unknown"
	}
}
