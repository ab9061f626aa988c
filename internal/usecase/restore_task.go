package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase/shared"
)

// RestoreTaskInput contains the parameters for restoring a minimized task.
type RestoreTaskInput struct {
	ID string // Registry id, e.g. "help:/docs/trees"
}

// RestoreTaskOutput contains the result of restoring.
type RestoreTaskOutput struct {
	Document *domain.Document
	Locator  domain.Locator       // Exact view to reopen
	Task     domain.MinimizedTask // The removed entry
}

// RestoreTask takes an entry off the taskbar and returns the view to reopen.
type RestoreTask struct {
	registry domain.TaskRegistry
	catalog  domain.DocumentCatalog
	logger   domain.Logger
}

// NewRestoreTask creates a new RestoreTask use case.
func NewRestoreTask(registry domain.TaskRegistry, catalog domain.DocumentCatalog, logger domain.Logger) *RestoreTask {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RestoreTask{registry: registry, catalog: catalog, logger: logger}
}

// Execute restores the task.
// A task whose document is no longer in the catalog fails with
// domain.ErrDocumentNotFound and stays in the registry so it can be dismissed.
func (uc *RestoreTask) Execute(_ context.Context, in RestoreTaskInput) (*RestoreTaskOutput, error) {
	task, err := shared.GetTask(uc.registry, in.ID)
	if err != nil {
		return nil, err
	}

	doc, loc, err := shared.LookupDocument(uc.catalog, task.URL)
	if err != nil {
		uc.logger.Warn("", "taskbar", fmt.Sprintf("cannot restore %s: %v", in.ID, err))
		return nil, err
	}

	tasks, _ := domain.RemoveTask(uc.registry.Read(), in.ID)
	if err := uc.registry.Write(tasks); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}

	uc.logger.Info("", "taskbar", "restored "+task.URL)
	return &RestoreTaskOutput{Task: task, Document: doc, Locator: loc}, nil
}
