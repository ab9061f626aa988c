package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/infra/browser"
	"github.com/runoshun/docwin/internal/usecase"
	"github.com/runoshun/docwin/internal/window"
)

// AppTitle is the terminal title shown on the catalog.
const AppTitle = "docwin"

// Layout constants.
const (
	tocWidth     = 28
	chromeHeight = 8 // header, tab strip, locator, taskbar, help and error lines
)

// Model is the main bubbletea model for the TUI.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	browser   *browser.Browser
	factory   *window.Factory
	session   *window.Session // nil on the catalog
	renderer  *Renderer
	ctx       context.Context
	cancel    context.CancelFunc
	err       error
	changes   <-chan struct{} // registry watcher, nil until started

	// State (slices - contain pointers)
	docs           []usecase.DocumentEntry
	tasks          []domain.MinimizedTask
	sectionOffsets []int // first viewport line of each section of the active tab
	title          string

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	viewport viewport.Model

	// Numeric state (smaller types last)
	focus         Focus
	width         int
	height        int
	docCursor     int
	taskCursor    int
	sectionCursor int
}

// New creates a new TUI Model with the given container, starting at start.
func New(c *app.Container, start domain.Locator) *Model {
	b := browser.New(start)
	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		container: c,
		browser:   b,
		factory:   c.WindowFactory(b),
		ctx:       ctx,
		cancel:    cancel,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		viewport:  viewport.New(80, 20),
		focus:     FocusDocuments,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadDocuments(),
		m.loadTasks(),
		m.watchRegistry(),
		m.reconcile(),
	)
}

// Screen returns what the current route shows.
func (m *Model) Screen() Screen {
	if m.session != nil {
		return ScreenWindow
	}
	return ScreenCatalog
}

// Session returns the mounted window, or nil on the catalog.
func (m *Model) Session() *window.Session {
	return m.session
}

// Browser returns the navigation history the TUI drives.
func (m *Model) Browser() *browser.Browser {
	return m.browser
}

// Tasks returns the taskbar entries.
func (m *Model) Tasks() []domain.MinimizedTask {
	return m.tasks
}

// loadDocuments returns a command that loads the catalog.
func (m *Model) loadDocuments() tea.Cmd {
	uc := m.container.ListDocumentsUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(m.ctx, usecase.ListDocumentsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgDocumentsLoaded{Documents: out.Documents}
	}
}

// loadTasks returns a command that reads the registry.
func (m *Model) loadTasks() tea.Cmd {
	uc := m.container.ListTasksUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(m.ctx, usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// watchRegistry starts the registry watcher when the backend supports one.
func (m *Model) watchRegistry() tea.Cmd {
	notifier := m.container.Notifier
	if notifier == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		changes, err := notifier.Watch(ctx)
		if err != nil {
			m.container.Logger.Warn("", "tui", "registry watcher unavailable: "+err.Error())
			return nil
		}
		return MsgWatchStarted{Changes: changes}
	}
}

// waitForChange blocks until the watcher reports a change.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return MsgRegistryChanged{}
	}
}

// minimize records the window in the registry. The input is captured here so
// the command does not read the browser from another goroutine.
func (m *Model) minimize() tea.Cmd {
	s := m.session
	uc := m.container.MinimizeDocumentUseCase()
	in := usecase.MinimizeDocumentInput{
		Title:   s.Document().Name,
		Locator: m.browser.Locator(),
		Scope:   s.ID(),
	}
	return func() tea.Msg {
		out, err := uc.Execute(m.ctx, in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMinimized{SessionID: in.Scope, Task: out.Task, Tasks: out.Tasks}
	}
}

// restore takes a task off the taskbar.
func (m *Model) restore(id string) tea.Cmd {
	uc := m.container.RestoreTaskUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(m.ctx, usecase.RestoreTaskInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskRestored{Locator: out.Locator}
	}
}

// dismiss removes a task without reopening it.
func (m *Model) dismiss(id string) tea.Cmd {
	uc := m.container.DismissTaskUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(m.ctx, usecase.DismissTaskInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDismissed{Tasks: out.Tasks}
	}
}

// reconcile brings the mounted session in line with the browser's current path.
// A new document path mounts a new session; a query or fragment change on the
// same document keeps the session and re-reads the tab parameter.
func (m *Model) reconcile() tea.Cmd {
	loc := m.browser.Locator()
	doc, ok := m.container.Catalog.Lookup(loc.Path)

	switch {
	case !ok:
		m.session = nil
		m.sectionOffsets = nil
	case m.session == nil || m.session.Document().Path != doc.Path:
		s, err := m.factory.Mount(doc)
		if err != nil {
			m.err = err
			m.session = nil
			break
		}
		m.session = s
		m.renderSections()
		m.jumpToFragment(loc.Fragment)
	default:
		if raw, _ := loc.Param(domain.TabParam); raw != m.session.Active().String() {
			m.session.Refresh()
			m.renderSections()
		}
	}

	return m.syncTitle()
}

// syncTitle sends the terminal title when it changed.
func (m *Model) syncTitle() tea.Cmd {
	title := AppTitle
	if m.session != nil {
		title = m.browser.Title()
	}
	if title == m.title {
		return nil
	}
	m.title = title
	return tea.SetWindowTitle(title)
}

// contentWidth returns the width available to section bodies.
func (m *Model) contentWidth() int {
	w := m.width - tocWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

// markdown returns a renderer matching the current width.
func (m *Model) markdown() *Renderer {
	width := m.contentWidth()
	if m.renderer != nil && m.renderer.Width() == width {
		return m.renderer
	}
	r, err := NewRenderer(m.container.AppConfig.UI.Theme, width)
	if err != nil {
		m.container.Logger.Warn("", "tui", err.Error())
		return nil
	}
	m.renderer = r
	return r
}

// renderSections fills the viewport with the active tab's sections and
// records where each one starts.
func (m *Model) renderSections() {
	m.sectionCursor = 0
	m.sectionOffsets = m.sectionOffsets[:0]
	if m.session == nil {
		return
	}

	r := m.markdown()
	var b strings.Builder
	line := 0
	for _, s := range m.session.Sections() {
		m.sectionOffsets = append(m.sectionOffsets, line)
		md := "## " + s.Label + "\n\n" + s.Body
		out := md + "\n"
		if r != nil {
			if rendered, err := r.Render(md); err == nil {
				out = rendered
			}
		}
		b.WriteString(out)
		line += strings.Count(out, "\n")
	}
	if len(m.sectionOffsets) == 0 {
		b.WriteString("This tab has no sections.\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

// jumpToFragment moves the section cursor to the fragment's section, if any.
func (m *Model) jumpToFragment(fragment string) {
	if fragment == "" || m.session == nil {
		return
	}
	for i, s := range m.session.Sections() {
		if s.ID == fragment {
			m.sectionCursor = i
			m.viewport.SetYOffset(m.sectionOffsets[i])
			return
		}
	}
}

// updateLayoutSizes resizes components after a terminal resize.
func (m *Model) updateLayoutSizes() {
	height := m.height - chromeHeight
	if height < 3 {
		height = 3
	}
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = height
	m.help.Width = m.width
	if m.session != nil {
		cursor := m.sectionCursor
		m.renderSections()
		m.sectionCursor = cursor
		if cursor < len(m.sectionOffsets) {
			m.viewport.SetYOffset(m.sectionOffsets[cursor])
		}
	}
}

// Shutdown stops background work.
func (m *Model) Shutdown() {
	m.cancel()
}
