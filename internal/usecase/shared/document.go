// Package shared holds helpers used by several use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
)

// LookupDocument parses raw as a locator and returns the catalog document at its path.
// This centralizes the common pattern of:
//
//	loc, err := domain.ParseLocator(raw)
//	doc, ok := catalog.Lookup(loc.Path)
//	if !ok { return domain.ErrDocumentNotFound }
func LookupDocument(catalog domain.DocumentCatalog, raw string) (*domain.Document, domain.Locator, error) {
	loc, err := domain.ParseLocator(raw)
	if err != nil {
		return nil, domain.Locator{}, err
	}
	doc, ok := catalog.Lookup(loc.Path)
	if !ok {
		return nil, loc, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, loc.Path)
	}
	return doc, loc, nil
}

// GetTask returns the registry entry for id, or domain.ErrTaskNotFound.
func GetTask(registry domain.TaskRegistry, id string) (domain.MinimizedTask, error) {
	task, ok := domain.FindTask(registry.Read(), id)
	if !ok {
		return domain.MinimizedTask{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return task, nil
}
