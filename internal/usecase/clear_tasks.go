package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
)

// ClearTasksInput contains the parameters for clearing the taskbar.
type ClearTasksInput struct{}

// ClearTasksOutput contains the result of clearing.
type ClearTasksOutput struct {
	Removed int // Number of entries removed
}

// ClearTasks empties the task registry.
type ClearTasks struct {
	registry domain.TaskRegistry
	logger   domain.Logger
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(registry domain.TaskRegistry, logger domain.Logger) *ClearTasks {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &ClearTasks{registry: registry, logger: logger}
}

// Execute writes an empty registry.
func (uc *ClearTasks) Execute(_ context.Context, _ ClearTasksInput) (*ClearTasksOutput, error) {
	removed := len(uc.registry.Read())
	if err := uc.registry.Write([]domain.MinimizedTask{}); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}

	uc.logger.Info("", "taskbar", fmt.Sprintf("cleared %d task(s)", removed))
	return &ClearTasksOutput{Removed: removed}, nil
}
