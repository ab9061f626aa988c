package usecase

import (
	"context"

	"github.com/runoshun/docwin/internal/domain"
)

// ListDocumentsInput contains the parameters for listing documents.
type ListDocumentsInput struct{}

// DocumentEntry is one catalog row with its minimized state.
type DocumentEntry struct {
	Document  *domain.Document
	Minimized bool // An entry for this document is in the registry
}

// ListDocumentsOutput contains the catalog, sorted by path.
type ListDocumentsOutput struct {
	Documents []DocumentEntry
}

// ListDocuments lists the catalog and marks documents that are minimized.
type ListDocuments struct {
	catalog  domain.DocumentCatalog
	registry domain.TaskRegistry
}

// NewListDocuments creates a new ListDocuments use case.
func NewListDocuments(catalog domain.DocumentCatalog, registry domain.TaskRegistry) *ListDocuments {
	return &ListDocuments{catalog: catalog, registry: registry}
}

// Execute lists the documents.
func (uc *ListDocuments) Execute(_ context.Context, _ ListDocumentsInput) (*ListDocumentsOutput, error) {
	minimized := make(map[string]bool)
	for _, t := range uc.registry.Read() {
		minimized[t.ID] = true
	}

	docs := uc.catalog.List()
	entries := make([]DocumentEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, DocumentEntry{
			Document:  d,
			Minimized: minimized[domain.TaskIDForPath(d.Path)],
		})
	}
	return &ListDocumentsOutput{Documents: entries}, nil
}
