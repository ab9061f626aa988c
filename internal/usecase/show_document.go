package usecase

import (
	"context"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase/shared"
)

// ShowDocumentInput contains the parameters for showing a document.
type ShowDocumentInput struct {
	Locator string // e.g. "/docs/trees?tab=concepts"
}

// ShowDocumentOutput describes the view a window would open with.
type ShowDocumentOutput struct {
	Document *domain.Document
	Title    string
	Tab      domain.TabID
	Locator  domain.Locator // Locator with the resolved tab applied
	Sections []domain.Section
}

// ShowDocument resolves a locator to the document view without opening a window.
type ShowDocument struct {
	catalog domain.DocumentCatalog
}

// NewShowDocument creates a new ShowDocument use case.
func NewShowDocument(catalog domain.DocumentCatalog) *ShowDocument {
	return &ShowDocument{catalog: catalog}
}

// Execute resolves the view. An unknown tab resolves to the document's first tab.
func (uc *ShowDocument) Execute(_ context.Context, in ShowDocumentInput) (*ShowDocumentOutput, error) {
	doc, loc, err := shared.LookupDocument(uc.catalog, in.Locator)
	if err != nil {
		return nil, err
	}

	raw, _ := loc.Param(domain.TabParam)
	tab := doc.ResolveTab(raw)

	return &ShowDocumentOutput{
		Document: doc,
		Tab:      tab,
		Title:    doc.WindowTitle(tab),
		Locator:  loc.WithParam(domain.TabParam, string(tab)),
		Sections: doc.SectionsFor(tab),
	}, nil
}
