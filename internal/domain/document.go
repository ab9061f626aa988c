package domain

import (
	"fmt"
	"strings"
)

// TabID identifies one of a document's fixed content tabs.
type TabID string

// String returns the raw tab identifier.
func (t TabID) String() string {
	return string(t)
}

// Section is an anchor target inside a tab plus its human label.
// Body holds the markdown content shown for the section.
type Section struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Body  string `yaml:"body,omitempty"`
}

// Tab groups the sections shown while the tab is active.
type Tab struct {
	ID       TabID     `yaml:"id"`
	Label    string    `yaml:"label"`
	Sections []Section `yaml:"sections"`
}

// Document is the static content of one document window.
// Tabs is the ordered enumerated set of tabs; the first tab is the default.
//
//nolint:govet // Field order follows the YAML layout for readability
type Document struct {
	Path    string `yaml:"path"`    // Logical path, e.g. "/docs/trees"
	Name    string `yaml:"name"`    // Display name used in the window title
	Summary string `yaml:"summary"` // One-line description shown in the catalog
	Tabs    []Tab  `yaml:"tabs"`
}

// Validate checks the structural invariants of a document.
func (d *Document) Validate() error {
	if !strings.HasPrefix(d.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidDocument, d.Path)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: %s has no name", ErrInvalidDocument, d.Path)
	}
	if len(d.Tabs) == 0 {
		return fmt.Errorf("%w: %s has no tabs", ErrInvalidDocument, d.Path)
	}

	seenTabs := make(map[TabID]bool, len(d.Tabs))
	for _, tab := range d.Tabs {
		if tab.ID == "" {
			return fmt.Errorf("%w: %s has a tab without id", ErrInvalidDocument, d.Path)
		}
		if seenTabs[tab.ID] {
			return fmt.Errorf("%w: %s has duplicate tab %q", ErrInvalidDocument, d.Path, tab.ID)
		}
		seenTabs[tab.ID] = true

		seenSections := make(map[string]bool, len(tab.Sections))
		for _, s := range tab.Sections {
			if s.ID == "" {
				return fmt.Errorf("%w: %s tab %q has a section without id", ErrInvalidDocument, d.Path, tab.ID)
			}
			if seenSections[s.ID] {
				return fmt.Errorf("%w: %s tab %q has duplicate section %q", ErrInvalidDocument, d.Path, tab.ID, s.ID)
			}
			seenSections[s.ID] = true
		}
	}
	return nil
}

// DefaultTab returns the first tab of the enumerated set.
func (d *Document) DefaultTab() TabID {
	if len(d.Tabs) == 0 {
		return ""
	}
	return d.Tabs[0].ID
}

// HasTab reports whether id is a member of the document's tab set.
func (d *Document) HasTab(id TabID) bool {
	return d.tabIndex(id) >= 0
}

// ResolveTab coerces a raw value (typically a query parameter) to a valid TabID.
// Unknown or empty values resolve to the default tab.
func (d *Document) ResolveTab(raw string) TabID {
	id := TabID(raw)
	if d.HasTab(id) {
		return id
	}
	return d.DefaultTab()
}

// TabIDs returns the tab identifiers in display order.
func (d *Document) TabIDs() []TabID {
	ids := make([]TabID, 0, len(d.Tabs))
	for _, tab := range d.Tabs {
		ids = append(ids, tab.ID)
	}
	return ids
}

// TabLabel returns the label for a tab, or the raw id if the tab is unknown.
func (d *Document) TabLabel(id TabID) string {
	if i := d.tabIndex(id); i >= 0 && d.Tabs[i].Label != "" {
		return d.Tabs[i].Label
	}
	return string(id)
}

// SectionsFor returns the ordered sections of a tab.
// Unknown tabs yield an empty slice, never nil.
func (d *Document) SectionsFor(id TabID) []Section {
	i := d.tabIndex(id)
	if i < 0 {
		return []Section{}
	}
	sections := make([]Section, len(d.Tabs[i].Sections))
	copy(sections, d.Tabs[i].Sections)
	return sections
}

// WindowTitle formats the title shown for the document while tab is active.
func (d *Document) WindowTitle(id TabID) string {
	return fmt.Sprintf("%s (%s)", d.Name, d.TabLabel(id))
}

// TabOffset returns the tab that is delta positions away from id, wrapping around.
func (d *Document) TabOffset(id TabID, delta int) TabID {
	n := len(d.Tabs)
	if n == 0 {
		return ""
	}
	i := d.tabIndex(id)
	if i < 0 {
		i = 0
	}
	next := ((i+delta)%n + n) % n
	return d.Tabs[next].ID
}

func (d *Document) tabIndex(id TabID) int {
	for i, tab := range d.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}
