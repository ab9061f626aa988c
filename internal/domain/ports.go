package domain

import "context"

// KeyValueStore is a durable, process-independent key/value namespace.
// Values are opaque bytes; a missing key is reported with ok=false.
type KeyValueStore interface {
	// Get returns the value stored under key.
	Get(key string) (value []byte, ok bool, err error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error
}

// TaskRegistry persists the ordered list of minimized tasks.
// All document windows share the same registry.
type TaskRegistry interface {
	// Read returns the stored tasks. Missing or malformed data reads as empty.
	Read() []MinimizedTask

	// Write replaces the stored tasks.
	Write(tasks []MinimizedTask) error
}

// ChangeNotifier reports changes made to the registry by other processes.
type ChangeNotifier interface {
	// Watch delivers a value on the returned channel after each change.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// NavigationHistory is the oracle over the current navigation stack.
type NavigationHistory interface {
	// CurrentDepth returns the position of the current entry, 0 for the first.
	CurrentDepth() int

	// GoBack steps back exactly one entry.
	GoBack() error

	// GoTo navigates to route, appending a history entry.
	GoTo(route string) error
}

// NavigateOptions controls how a location change is recorded.
type NavigateOptions struct {
	HistoryAppend bool // false replaces the current entry
}

// Location reads and rewrites the current locator.
type Location interface {
	// Locator returns the current full locator.
	Locator() Locator

	// Param returns the first value of a query parameter.
	Param(name string) (string, bool)

	// SetParam sets a query parameter on the current locator.
	SetParam(name, value string, opts NavigateOptions)

	// SetFragment replaces the in-page fragment of the current locator.
	SetFragment(fragment string, opts NavigateOptions)
}

// TitleSink receives the window title exposed to the host environment.
type TitleSink interface {
	SetTitle(title string)
}

// DocumentCatalog provides the static documents.
type DocumentCatalog interface {
	// Lookup returns the document at path.
	Lookup(path string) (*Document, bool)

	// List returns all documents sorted by path.
	List() []*Document
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- local).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local override file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default config template to the global path.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes categorized log entries.
// Scope identifies the window instance, or "" for global entries.
type Logger interface {
	Debug(scope, category, msg string)
	Info(scope, category, msg string)
	Warn(scope, category, msg string)
	Error(scope, category, msg string)
}

// NopLogger discards all entries.
type NopLogger struct{}

// Debug discards the entry.
func (NopLogger) Debug(string, string, string) {}

// Info discards the entry.
func (NopLogger) Info(string, string, string) {}

// Warn discards the entry.
func (NopLogger) Warn(string, string, string) {}

// Error discards the entry.
func (NopLogger) Error(string, string, string) {}
