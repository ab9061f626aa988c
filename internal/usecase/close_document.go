package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
)

// CloseDocumentInput contains the parameters for closing a document window.
type CloseDocumentInput struct {
	Scope string // Window instance id for logging
}

// CloseDocumentOutput contains the result of closing.
type CloseDocumentOutput struct {
	Route   string              // Fallback route, set when Outcome is CloseFellBack
	Outcome domain.CloseOutcome // Which branch was taken
}

// CloseDocument leaves the current document: one step back in history when
// there is a prior entry, the fallback route otherwise.
type CloseDocument struct {
	history  domain.NavigationHistory
	logger   domain.Logger
	fallback string
}

// NewCloseDocument creates a new CloseDocument use case.
func NewCloseDocument(history domain.NavigationHistory, fallback string, logger domain.Logger) *CloseDocument {
	if fallback == "" {
		fallback = domain.DefaultFallbackRoute
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &CloseDocument{
		history:  history,
		fallback: fallback,
		logger:   logger,
	}
}

// Execute closes the document. The task registry is never touched.
func (uc *CloseDocument) Execute(_ context.Context, in CloseDocumentInput) (*CloseDocumentOutput, error) {
	if uc.history.CurrentDepth() > 0 {
		if err := uc.history.GoBack(); err != nil {
			return nil, fmt.Errorf("go back: %w", err)
		}
		uc.logger.Debug(in.Scope, "window", "closed by stepping back")
		return &CloseDocumentOutput{Outcome: domain.CloseSteppedBack}, nil
	}

	if err := uc.history.GoTo(uc.fallback); err != nil {
		return nil, fmt.Errorf("go to %s: %w", uc.fallback, err)
	}
	uc.logger.Debug(in.Scope, "window", "closed to "+uc.fallback)
	return &CloseDocumentOutput{Outcome: domain.CloseFellBack, Route: uc.fallback}, nil
}
