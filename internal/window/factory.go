// Package window implements the document window session: tab selection kept in
// sync with the locator, the window title, and the minimize and close actions.
package window

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase"
)

// Deps holds the host environment a window runs in.
type Deps struct {
	Location domain.Location
	History  domain.NavigationHistory
	Title    domain.TitleSink
	Registry domain.TaskRegistry
	Logger   domain.Logger
	Fallback string // Route used by Close when there is no history; defaults to "/"
}

// Factory mounts sessions for any document against one host environment.
type Factory struct {
	deps       Deps
	minimizeUC *usecase.MinimizeDocument
	closeUC    *usecase.CloseDocument
	newID      func() string
}

// NewFactory creates a Factory.
func NewFactory(deps Deps) *Factory {
	if deps.Logger == nil {
		deps.Logger = domain.NopLogger{}
	}
	if deps.Fallback == "" {
		deps.Fallback = domain.DefaultFallbackRoute
	}
	return &Factory{
		deps:       deps,
		minimizeUC: usecase.NewMinimizeDocument(deps.Registry, deps.Logger),
		closeUC:    usecase.NewCloseDocument(deps.History, deps.Fallback, deps.Logger),
		newID:      func() string { return uuid.New().String() },
	}
}

// Mount starts a session for doc. The initial tab comes from the locator's
// tab parameter; a missing or unknown value selects the first tab.
// The locator and title are brought in line with the initial tab before returning.
func (f *Factory) Mount(doc *domain.Document) (*Session, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidDocument)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	raw, _ := f.deps.Location.Param(domain.TabParam)
	s := &Session{
		doc:        doc,
		deps:       f.deps,
		minimizeUC: f.minimizeUC,
		closeUC:    f.closeUC,
		id:         f.newID(),
		active:     doc.ResolveTab(raw),
	}
	if raw != "" && domain.TabID(raw) != s.active {
		s.deps.Logger.Debug(s.id, "window", fmt.Sprintf("ignoring unknown tab %q for %s", raw, doc.Path))
	}

	s.sync()
	s.deps.Logger.Info(s.id, "window", fmt.Sprintf("mounted %s on %s", doc.Path, s.active))
	return s, nil
}
