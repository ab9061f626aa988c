package domain

import (
	"encoding/json"
	"errors"
)

// TaskKindHelp is the kind recorded for minimized document windows.
const TaskKindHelp = "help"

// taskIDPrefix namespaces document window ids in the registry.
const taskIDPrefix = TaskKindHelp + ":"

// MinimizedTask is a document window the user set aside.
// URL captures the exact locator so restoring reproduces the same view.
type MinimizedTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"`
}

// TaskIDForPath derives the registry id for a document path.
func TaskIDForPath(path string) string {
	return taskIDPrefix + path
}

// NewMinimizedTask builds the registry record for a document at loc.
func NewMinimizedTask(title string, loc Locator) MinimizedTask {
	return MinimizedTask{
		ID:    TaskIDForPath(loc.Path),
		Title: title,
		URL:   loc.String(),
		Kind:  TaskKindHelp,
	}
}

// Locator parses the task URL.
func (t MinimizedTask) Locator() (Locator, error) {
	return ParseLocator(t.URL)
}

// UpsertTask removes any entry with the same id and appends task,
// moving it to the most recent position. The input slice is not modified.
func UpsertTask(tasks []MinimizedTask, task MinimizedTask) []MinimizedTask {
	out := make([]MinimizedTask, 0, len(tasks)+1)
	for _, t := range tasks {
		if t.ID != task.ID {
			out = append(out, t)
		}
	}
	return append(out, task)
}

// RemoveTask returns tasks without the entry for id and whether one was removed.
func RemoveTask(tasks []MinimizedTask, id string) ([]MinimizedTask, bool) {
	out := make([]MinimizedTask, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	return out, found
}

// FindTask returns the entry for id.
func FindTask(tasks []MinimizedTask, id string) (MinimizedTask, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return MinimizedTask{}, false
}

// NormalizeRegistry drops entries without an id and collapses duplicate ids,
// keeping the most recent (last) occurrence in its position.
func NormalizeRegistry(tasks []MinimizedTask) []MinimizedTask {
	last := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if t.ID != "" {
			last[t.ID] = i
		}
	}
	out := make([]MinimizedTask, 0, len(last))
	for i, t := range tasks {
		if t.ID != "" && last[t.ID] == i {
			out = append(out, t)
		}
	}
	return out
}

// DecodeRegistry parses a persisted registry value.
// The value must be a JSON array of task objects.
func DecodeRegistry(data []byte) ([]MinimizedTask, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrRegistryCorrupted, err)
	}
	tasks := make([]MinimizedTask, 0, len(raw))
	for _, item := range raw {
		var t MinimizedTask
		if err := json.Unmarshal(item, &t); err != nil {
			return nil, errors.Join(ErrRegistryCorrupted, err)
		}
		tasks = append(tasks, t)
	}
	return NormalizeRegistry(tasks), nil
}

// EncodeRegistry serializes the registry for storage.
// A nil slice is written as an empty array.
func EncodeRegistry(tasks []MinimizedTask) ([]byte, error) {
	if tasks == nil {
		tasks = []MinimizedTask{}
	}
	return json.Marshal(tasks)
}
