package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/docwin/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case MsgDocumentsLoaded:
		m.docs = msg.Documents
		m.docCursor = clampCursor(m.docCursor, len(m.docs))
		return m, nil

	case MsgTasksLoaded:
		m.setTasks(msg.Tasks)
		return m, nil

	case MsgTaskMinimized:
		m.setTasks(msg.Tasks)
		// The window goes away once it is safely on the taskbar
		if m.session == nil || m.session.ID() != msg.SessionID {
			return m, nil
		}
		return m, m.closeWindow()

	case MsgTaskRestored:
		m.focus = FocusDocuments
		m.browser.Navigate(msg.Locator)
		return m, tea.Batch(m.reconcile(), m.loadTasks())

	case MsgTaskDismissed:
		m.setTasks(msg.Tasks)
		return m, nil

	case MsgWatchStarted:
		m.changes = msg.Changes
		return m, waitForChange(m.changes)

	case MsgRegistryChanged:
		return m, tea.Batch(m.loadTasks(), waitForChange(m.changes))

	case MsgError:
		m.err = msg.Err
		m.container.Logger.Error("", "tui", msg.Err.Error())
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Shutdown()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.err = nil

	if key.Matches(msg, m.keys.Back) {
		if err := m.browser.GoBack(); err != nil && !errors.Is(err, domain.ErrNoHistory) {
			m.err = err
		}
		return m, m.reconcile()
	}

	if m.session != nil {
		return m.handleWindowKey(msg)
	}
	return m.handleCatalogKey(msg)
}

// handleWindowKey handles keys while a document window is mounted.
func (m *Model) handleWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.NextTab):
		s.NextTab()
		m.renderSections()
		return m, m.syncTitle()

	case key.Matches(msg, m.keys.PrevTab):
		s.PrevTab()
		m.renderSections()
		return m, m.syncTitle()

	case key.Matches(msg, m.keys.SelectTab):
		idx := int(msg.String()[0] - '1')
		tabs := s.Document().Tabs
		if idx >= len(tabs) {
			return m, nil
		}
		if tabs[idx].ID != s.Active() {
			if err := s.SelectTab(tabs[idx].ID); err != nil {
				m.err = err
				return m, nil
			}
			m.renderSections()
		}
		return m, m.syncTitle()

	case key.Matches(msg, m.keys.Up):
		if m.sectionCursor > 0 {
			m.sectionCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.sectionCursor < len(m.sectionOffsets)-1 {
			m.sectionCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		sections := s.Sections()
		if m.sectionCursor >= len(sections) {
			return m, nil
		}
		if err := s.JumpTo(sections[m.sectionCursor].ID); err != nil {
			m.err = err
			return m, nil
		}
		m.viewport.SetYOffset(m.sectionOffsets[m.sectionCursor])
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height/2)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height/2)
		return m, nil

	case key.Matches(msg, m.keys.Minimize):
		return m, m.minimize()

	case key.Matches(msg, m.keys.Close):
		return m, m.closeWindow()
	}

	return m, nil
}

// handleCatalogKey handles keys on the catalog screen.
func (m *Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchFocus):
		if len(m.tasks) > 0 || m.focus == FocusTaskbar {
			m.focus = m.focus.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.focus == FocusTaskbar {
			m.taskCursor = clampCursor(m.taskCursor-1, len(m.tasks))
		} else {
			m.docCursor = clampCursor(m.docCursor-1, len(m.docs))
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.focus == FocusTaskbar {
			m.taskCursor = clampCursor(m.taskCursor+1, len(m.tasks))
		} else {
			m.docCursor = clampCursor(m.docCursor+1, len(m.docs))
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.focus == FocusTaskbar {
			if len(m.tasks) == 0 {
				return m, nil
			}
			return m, m.restore(m.tasks[m.taskCursor].ID)
		}
		if len(m.docs) == 0 {
			return m, nil
		}
		loc, err := domain.ParseLocator(m.docs[m.docCursor].Document.Path)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.browser.Navigate(loc)
		return m, m.reconcile()

	case key.Matches(msg, m.keys.Dismiss):
		if m.focus != FocusTaskbar || len(m.tasks) == 0 {
			return m, nil
		}
		return m, m.dismiss(m.tasks[m.taskCursor].ID)
	}

	return m, nil
}

// closeWindow runs the close action and follows the browser to wherever it went.
func (m *Model) closeWindow() tea.Cmd {
	outcome, err := m.session.Close(m.ctx)
	if err != nil {
		m.err = fmt.Errorf("close window: %w", err)
		return nil
	}
	m.container.Logger.Debug(m.session.ID(), "tui", "window closed: "+outcome.String())
	return m.reconcile()
}

// setTasks replaces the taskbar entries.
func (m *Model) setTasks(tasks []domain.MinimizedTask) {
	m.tasks = tasks
	m.taskCursor = clampCursor(m.taskCursor, len(tasks))
	if len(tasks) == 0 {
		m.focus = FocusDocuments
	}
}

// clampCursor keeps a cursor inside [0, n).
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
