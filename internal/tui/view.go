package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/docwin/internal/domain"
)

// chipWidth is the widest a taskbar chip title may get.
const chipWidth = 24

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.Screen() {
	case ScreenWindow:
		content = m.viewWindow()
	case ScreenCatalog:
		content = m.viewCatalog()
	}

	return m.styles.App.Render(content)
}

// viewWindow renders a mounted document window.
func (m *Model) viewWindow() string {
	s := m.session
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(m.truncate(s.Title())))
	b.WriteString("\n")
	b.WriteString(m.viewTabStrip())
	b.WriteString("\n")
	b.WriteString(m.styles.Locator.Render(m.truncate(m.browser.Locator().String())))
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewTOC(), " ", m.viewport.View())
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.viewTaskbar(false))
	b.WriteString(m.viewFooter(m.keys.WindowHelp()))
	return b.String()
}

// viewTabStrip renders the tab labels with the active one highlighted.
func (m *Model) viewTabStrip() string {
	s := m.session
	tabs := make([]string, 0, len(s.Document().Tabs))
	for i, tab := range s.Document().Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label)
		if tab.ID == s.Active() {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewTOC renders the active tab's sections.
func (m *Model) viewTOC() string {
	sections := m.session.Sections()
	lines := make([]string, 0, len(sections))
	for i, sec := range sections {
		label := truncate.StringWithTail(sec.Label, uint(tocWidth-4), "…")
		if i == m.sectionCursor {
			lines = append(lines, m.styles.TOCSelected.Render("> "+label))
		} else {
			lines = append(lines, m.styles.TOCItem.Render("  "+label))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, m.styles.DocSummary.Render("(no sections)"))
	}
	return m.styles.TOC.
		Width(tocWidth).
		Height(m.viewport.Height).
		Render(strings.Join(lines, "\n"))
}

// viewCatalog renders the document list.
func (m *Model) viewCatalog() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(AppTitle))
	b.WriteString(m.styles.Locator.Render("  " + m.browser.Locator().String()))
	b.WriteString("\n\n")

	minimized := make(map[string]bool, len(m.tasks))
	for _, t := range m.tasks {
		minimized[t.ID] = true
	}

	if len(m.docs) == 0 {
		b.WriteString(m.styles.DocSummary.Render("No documents"))
		b.WriteString("\n")
	}
	for i, e := range m.docs {
		doc := e.Document
		marker := "  "
		if minimized[domain.TaskIDForPath(doc.Path)] {
			marker = m.styles.DocMinimized.Render("▁ ")
		}
		name := doc.Name
		style := m.styles.DocItem
		if i == m.docCursor && m.focus == FocusDocuments {
			name = "> " + name
			style = m.styles.DocSelected
		} else {
			name = "  " + name
		}
		line := marker + style.Render(name) + "  " + m.styles.DocSummary.Render(doc.Summary)
		b.WriteString(m.truncate(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewTaskbar(m.focus == FocusTaskbar))
	b.WriteString(m.viewFooter(m.keys.CatalogHelp()))
	return b.String()
}

// viewTaskbar renders the minimized tasks as chips.
func (m *Model) viewTaskbar(focused bool) string {
	label := m.styles.TaskbarLabel.Render("Taskbar")
	if len(m.tasks) == 0 {
		return m.styles.Taskbar.Width(m.innerWidth()).Render(label+" "+m.styles.DocSummary.Render("(empty)")) + "\n"
	}

	chips := make([]string, 0, len(m.tasks)+1)
	chips = append(chips, label)
	for i, t := range m.tasks {
		title := truncate.StringWithTail(t.Title, chipWidth, "…")
		if focused && i == m.taskCursor {
			chips = append(chips, m.styles.TaskChipSelected.Render(title))
		} else {
			chips = append(chips, m.styles.TaskChip.Render(title))
		}
	}
	bar := m.styles.Taskbar.Width(m.innerWidth()).Render(lipgloss.JoinHorizontal(lipgloss.Top, chips...))

	if focused {
		url := m.styles.Locator.Render(m.truncate(m.tasks[m.taskCursor].URL))
		return bar + "\n" + url + "\n"
	}
	return bar + "\n"
}

// viewFooter renders the error line and key help.
func (m *Model) viewFooter(keys ScreenKeys) string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render(m.truncate("Error: " + m.err.Error())))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

// innerWidth is the width inside the app padding.
func (m *Model) innerWidth() int {
	w := m.width - 2
	if w < 10 {
		w = 10
	}
	return w
}

// truncate cuts s to the inner width.
func (m *Model) truncate(s string) string {
	return truncate.StringWithTail(s, uint(m.innerWidth()), "…")
}
