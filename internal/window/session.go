package window

import (
	"context"
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase"
)

// Session is one mounted document window. The active tab is always a member
// of the document's tab set and, after every call, equals the locator's tab parameter.
// A Session is not safe for concurrent use.
type Session struct {
	doc        *domain.Document
	minimizeUC *usecase.MinimizeDocument
	closeUC    *usecase.CloseDocument
	deps       Deps
	id         string
	active     domain.TabID
}

// ID returns the window instance id.
func (s *Session) ID() string {
	return s.id
}

// Document returns the mounted document.
func (s *Session) Document() *domain.Document {
	return s.doc
}

// Active returns the active tab.
func (s *Session) Active() domain.TabID {
	return s.active
}

// Title returns the window title for the active tab.
func (s *Session) Title() string {
	return s.doc.WindowTitle(s.active)
}

// SelectTab makes t the active tab and syncs the locator and title.
// Selecting the active tab again changes nothing.
func (s *Session) SelectTab(t domain.TabID) error {
	if !s.doc.HasTab(t) {
		return fmt.Errorf("%w: %q in %s", domain.ErrUnknownTab, t, s.doc.Path)
	}
	s.active = t
	s.sync()
	return nil
}

// NextTab selects the tab after the active one, wrapping around.
func (s *Session) NextTab() {
	_ = s.SelectTab(s.doc.TabOffset(s.active, 1))
}

// PrevTab selects the tab before the active one, wrapping around.
func (s *Session) PrevTab() {
	_ = s.SelectTab(s.doc.TabOffset(s.active, -1))
}

// Refresh re-reads the tab parameter after the locator was changed externally.
// An unknown value falls back to the first tab.
func (s *Session) Refresh() {
	raw, _ := s.deps.Location.Param(domain.TabParam)
	s.active = s.doc.ResolveTab(raw)
	s.sync()
}

// SectionsFor returns the sections of t. Unknown tabs yield an empty slice.
func (s *Session) SectionsFor(t domain.TabID) []domain.Section {
	return s.doc.SectionsFor(t)
}

// Sections returns the sections of the active tab.
func (s *Session) Sections() []domain.Section {
	return s.doc.SectionsFor(s.active)
}

// JumpTo points the locator fragment at a section of the active tab,
// without adding a history entry.
func (s *Session) JumpTo(sectionID string) error {
	for _, sec := range s.Sections() {
		if sec.ID == sectionID {
			s.deps.Location.SetFragment(sectionID, domain.NavigateOptions{HistoryAppend: false})
			return nil
		}
	}
	return fmt.Errorf("%w: %q in tab %s", domain.ErrUnknownSection, sectionID, s.active)
}

// Snapshot returns the registry entry minimizing would record now.
func (s *Session) Snapshot() domain.MinimizedTask {
	return domain.NewMinimizedTask(s.doc.Name, s.deps.Location.Locator())
}

// Minimize records the window in the task registry.
// Minimizing the same document again moves its entry to the end.
func (s *Session) Minimize(ctx context.Context) (domain.MinimizedTask, error) {
	out, err := s.minimizeUC.Execute(ctx, usecase.MinimizeDocumentInput{
		Title:   s.doc.Name,
		Locator: s.deps.Location.Locator(),
		Scope:   s.id,
	})
	if err != nil {
		return domain.MinimizedTask{}, err
	}
	return out.Task, nil
}

// Close steps back one history entry, or opens the fallback route when
// the window was the first entry.
func (s *Session) Close(ctx context.Context) (domain.CloseOutcome, error) {
	out, err := s.closeUC.Execute(ctx, usecase.CloseDocumentInput{Scope: s.id})
	if err != nil {
		return 0, err
	}
	return out.Outcome, nil
}

// sync rewrites the tab parameter when it differs from the active tab and
// publishes the title. The locator rewrite never adds a history entry.
func (s *Session) sync() {
	if current, ok := s.deps.Location.Param(domain.TabParam); !ok || current != string(s.active) {
		s.deps.Location.SetParam(domain.TabParam, string(s.active), domain.NavigateOptions{HistoryAppend: false})
	}
	s.deps.Title.SetTitle(s.Title())
}
