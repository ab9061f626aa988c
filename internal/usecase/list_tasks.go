package usecase

import (
	"context"

	"github.com/runoshun/docwin/internal/domain"
)

// ListTasksInput contains the parameters for listing minimized tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the minimized tasks, oldest first.
type ListTasksOutput struct {
	Tasks []domain.MinimizedTask
}

// ListTasks is the use case for listing minimized tasks.
type ListTasks struct {
	registry domain.TaskRegistry
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(registry domain.TaskRegistry) *ListTasks {
	return &ListTasks{registry: registry}
}

// Execute reads the registry.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	return &ListTasksOutput{Tasks: uc.registry.Read()}, nil
}
