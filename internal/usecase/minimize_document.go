// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
)

// MinimizeDocumentInput contains the parameters for minimizing a document window.
type MinimizeDocumentInput struct {
	Title   string         // Document name recorded in the registry
	Locator domain.Locator // Full locator at the moment of minimizing
	Scope   string         // Window instance id for logging
}

// MinimizeDocumentOutput contains the result of minimizing.
type MinimizeDocumentOutput struct {
	Tasks []domain.MinimizedTask // Registry after the write
	Task  domain.MinimizedTask   // The recorded entry
}

// MinimizeDocument records a document window in the shared task registry.
type MinimizeDocument struct {
	registry domain.TaskRegistry
	logger   domain.Logger
}

// NewMinimizeDocument creates a new MinimizeDocument use case.
func NewMinimizeDocument(registry domain.TaskRegistry, logger domain.Logger) *MinimizeDocument {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &MinimizeDocument{
		registry: registry,
		logger:   logger,
	}
}

// Execute replaces any entry for the same document and appends the new one.
// Repeating the call with the same input leaves the registry unchanged.
func (uc *MinimizeDocument) Execute(_ context.Context, in MinimizeDocumentInput) (*MinimizeDocumentOutput, error) {
	task := domain.NewMinimizedTask(in.Title, in.Locator)
	tasks := domain.UpsertTask(uc.registry.Read(), task)

	if err := uc.registry.Write(tasks); err != nil {
		return nil, fmt.Errorf("save minimized task: %w", err)
	}

	uc.logger.Info(in.Scope, "window", fmt.Sprintf("minimized %s as %s", task.URL, task.ID))
	return &MinimizeDocumentOutput{Task: task, Tasks: tasks}, nil
}
