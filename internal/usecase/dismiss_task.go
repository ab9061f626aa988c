package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase/shared"
)

// DismissTaskInput contains the parameters for dismissing a minimized task.
type DismissTaskInput struct {
	ID string // Registry id, e.g. "help:/docs/trees"
}

// DismissTaskOutput contains the result of dismissing.
type DismissTaskOutput struct {
	Tasks []domain.MinimizedTask // Registry after the write
	Task  domain.MinimizedTask   // The removed entry
}

// DismissTask removes an entry from the taskbar without opening it.
type DismissTask struct {
	registry domain.TaskRegistry
	logger   domain.Logger
}

// NewDismissTask creates a new DismissTask use case.
func NewDismissTask(registry domain.TaskRegistry, logger domain.Logger) *DismissTask {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &DismissTask{registry: registry, logger: logger}
}

// Execute removes the entry. Returns domain.ErrTaskNotFound if it does not exist.
func (uc *DismissTask) Execute(_ context.Context, in DismissTaskInput) (*DismissTaskOutput, error) {
	task, err := shared.GetTask(uc.registry, in.ID)
	if err != nil {
		return nil, err
	}

	tasks, _ := domain.RemoveTask(uc.registry.Read(), in.ID)
	if err := uc.registry.Write(tasks); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}

	uc.logger.Info("", "taskbar", "dismissed "+in.ID)
	return &DismissTaskOutput{Task: task, Tasks: tasks}, nil
}
