// Package browser provides an in-process navigation host: a history stack,
// the current locator and the window title.
package browser

import (
	"fmt"
	"sync"

	"github.com/runoshun/docwin/internal/domain"
)

// Browser implements domain.NavigationHistory, domain.Location and domain.TitleSink.
// Entries behind the current one can be returned to with GoBack; navigating
// from a past entry drops everything after it.
type Browser struct {
	title   string
	entries []domain.Locator
	current int
	mu      sync.RWMutex
}

// New creates a Browser whose only entry is start.
func New(start domain.Locator) *Browser {
	return &Browser{entries: []domain.Locator{start}}
}

// Navigate pushes loc as a new entry.
func (b *Browser) Navigate(loc domain.Locator) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.push(loc)
}

// CurrentDepth returns the position of the current entry, 0 for the first.
func (b *Browser) CurrentDepth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Len returns the number of entries, including forward ones.
func (b *Browser) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// GoBack moves to the previous entry.
func (b *Browser) GoBack() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == 0 {
		return domain.ErrNoHistory
	}
	b.current--
	return nil
}

// GoTo parses route and pushes it as a new entry.
func (b *Browser) GoTo(route string) error {
	loc, err := domain.ParseLocator(route)
	if err != nil {
		return fmt.Errorf("go to %q: %w", route, err)
	}
	b.Navigate(loc)
	return nil
}

// Locator returns the current locator.
func (b *Browser) Locator() domain.Locator {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.entries[b.current]
}

// Param returns the first value of a query parameter of the current locator.
func (b *Browser) Param(name string) (string, bool) {
	return b.Locator().Param(name)
}

// SetParam sets a query parameter on the current locator.
func (b *Browser) SetParam(name, value string, opts domain.NavigateOptions) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.apply(b.entries[b.current].WithParam(name, value), opts)
}

// SetFragment replaces the fragment of the current locator.
func (b *Browser) SetFragment(fragment string, opts domain.NavigateOptions) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.apply(b.entries[b.current].WithFragment(fragment), opts)
}

// SetTitle records the window title.
func (b *Browser) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.title = title
}

// Title returns the last title set.
func (b *Browser) Title() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.title
}

func (b *Browser) apply(loc domain.Locator, opts domain.NavigateOptions) {
	if opts.HistoryAppend {
		b.push(loc)
		return
	}
	b.entries[b.current] = loc
}

// push must be called with mu held.
func (b *Browser) push(loc domain.Locator) {
	b.entries = append(b.entries[:b.current+1], loc)
	b.current = len(b.entries) - 1
}

// Ensure Browser implements the navigation ports.
var (
	_ domain.NavigationHistory = (*Browser)(nil)
	_ domain.Location          = (*Browser)(nil)
	_ domain.TitleSink         = (*Browser)(nil)
)
