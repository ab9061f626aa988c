// Package registry persists the minimized task list in a key/value store.
package registry

import (
	"fmt"

	"github.com/runoshun/docwin/internal/domain"
)

const logCategory = "registry"

// Registry implements domain.TaskRegistry over a KeyValueStore.
// Reads never fail: unreadable or malformed data is treated as an empty list.
type Registry struct {
	store  domain.KeyValueStore
	logger domain.Logger
	key    string
}

// New creates a Registry storing the list under key.
func New(store domain.KeyValueStore, key string, logger domain.Logger) *Registry {
	if key == "" {
		key = domain.DefaultRegistryKey
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Registry{store: store, key: key, logger: logger}
}

// Read returns the stored tasks, oldest first.
func (r *Registry) Read() []domain.MinimizedTask {
	data, ok, err := r.store.Get(r.key)
	if err != nil {
		r.logger.Warn("", logCategory, fmt.Sprintf("read %s failed, treating as empty: %v", r.key, err))
		return []domain.MinimizedTask{}
	}
	if !ok {
		return []domain.MinimizedTask{}
	}

	tasks, err := domain.DecodeRegistry(data)
	if err != nil {
		r.logger.Warn("", logCategory, fmt.Sprintf("discarding malformed %s: %v", r.key, err))
		return []domain.MinimizedTask{}
	}
	return tasks
}

// Write replaces the stored tasks.
func (r *Registry) Write(tasks []domain.MinimizedTask) error {
	data, err := domain.EncodeRegistry(tasks)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := r.store.Set(r.key, data); err != nil {
		r.logger.Error("", logCategory, fmt.Sprintf("write %s failed: %v", r.key, err))
		return fmt.Errorf("write registry: %w", err)
	}
	r.logger.Debug("", logCategory, fmt.Sprintf("wrote %d task(s)", len(tasks)))
	return nil
}

// Ensure Registry implements TaskRegistry.
var _ domain.TaskRegistry = (*Registry)(nil)
