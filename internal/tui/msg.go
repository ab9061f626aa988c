package tui

import (
	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgDocumentsLoaded is sent when the catalog is loaded.
type MsgDocumentsLoaded struct {
	Documents []usecase.DocumentEntry
}

func (MsgDocumentsLoaded) sealed() {}

// MsgTasksLoaded is sent when the registry is read.
type MsgTasksLoaded struct {
	Tasks []domain.MinimizedTask
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskMinimized is sent after a window was recorded in the registry.
type MsgTaskMinimized struct {
	SessionID string // Window that asked to be minimized
	Tasks     []domain.MinimizedTask
	Task      domain.MinimizedTask
}

func (MsgTaskMinimized) sealed() {}

// MsgTaskRestored is sent after a task was taken off the taskbar.
type MsgTaskRestored struct {
	Locator domain.Locator
}

func (MsgTaskRestored) sealed() {}

// MsgTaskDismissed is sent after a task was removed without reopening it.
type MsgTaskDismissed struct {
	Tasks []domain.MinimizedTask
}

func (MsgTaskDismissed) sealed() {}

// MsgWatchStarted is sent once the registry watcher is running.
type MsgWatchStarted struct {
	Changes <-chan struct{}
}

func (MsgWatchStarted) sealed() {}

// MsgRegistryChanged is sent when another process changed the registry.
type MsgRegistryChanged struct{}

func (MsgRegistryChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
