// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/runoshun/docwin/internal/domain"
)

// MockKeyValueStore is a test double for domain.KeyValueStore.
type MockKeyValueStore struct {
	Data     map[string][]byte
	GetErr   error
	SetErr   error
	SetCalls int
}

// NewMockKeyValueStore creates a new MockKeyValueStore with an initialized map.
func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{Data: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (m *MockKeyValueStore) Get(key string) ([]byte, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MockKeyValueStore) Set(key string, value []byte) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = slices.Clone(value)
	return nil
}

// MockTaskRegistry is a test double for domain.TaskRegistry.
type MockTaskRegistry struct {
	WriteErr error
	Tasks    []domain.MinimizedTask
	Writes   [][]domain.MinimizedTask
}

// NewMockTaskRegistry creates a MockTaskRegistry holding tasks.
func NewMockTaskRegistry(tasks ...domain.MinimizedTask) *MockTaskRegistry {
	return &MockTaskRegistry{Tasks: tasks}
}

// Read returns a copy of the stored tasks.
func (m *MockTaskRegistry) Read() []domain.MinimizedTask {
	out := slices.Clone(m.Tasks)
	if out == nil {
		out = []domain.MinimizedTask{}
	}
	return out
}

// Write records the call and replaces the stored tasks.
func (m *MockTaskRegistry) Write(tasks []domain.MinimizedTask) error {
	m.Writes = append(m.Writes, slices.Clone(tasks))
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Tasks = slices.Clone(tasks)
	return nil
}

// MockHistory is a test double for domain.NavigationHistory.
type MockHistory struct {
	GoBackErr   error
	GoToErr     error
	Routes      []string
	Depth       int
	GoBackCalls int
}

// CurrentDepth returns the configured depth.
func (m *MockHistory) CurrentDepth() int {
	return m.Depth
}

// GoBack records the call and decrements the depth.
func (m *MockHistory) GoBack() error {
	m.GoBackCalls++
	if m.GoBackErr != nil {
		return m.GoBackErr
	}
	if m.Depth == 0 {
		return domain.ErrNoHistory
	}
	m.Depth--
	return nil
}

// GoTo records the route and pushes an entry.
func (m *MockHistory) GoTo(route string) error {
	m.Routes = append(m.Routes, route)
	if m.GoToErr != nil {
		return m.GoToErr
	}
	m.Depth++
	return nil
}

// MockTitleSink records every title it receives.
type MockTitleSink struct {
	Titles []string
}

// SetTitle records title.
func (m *MockTitleSink) SetTitle(title string) {
	m.Titles = append(m.Titles, title)
}

// Last returns the most recent title.
func (m *MockTitleSink) Last() string {
	if len(m.Titles) == 0 {
		return ""
	}
	return m.Titles[len(m.Titles)-1]
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Scope    string
	Category string
	Msg      string
}

// MockLogger captures log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, scope, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Scope: scope, Category: category, Msg: msg})
}

// Debug captures a debug entry.
func (m *MockLogger) Debug(scope, category, msg string) { m.add("DEBUG", scope, category, msg) }

// Info captures an info entry.
func (m *MockLogger) Info(scope, category, msg string) { m.add("INFO", scope, category, msg) }

// Warn captures a warn entry.
func (m *MockLogger) Warn(scope, category, msg string) { m.add("WARN", scope, category, msg) }

// Error captures an error entry.
func (m *MockLogger) Error(scope, category, msg string) { m.add("ERROR", scope, category, msg) }

// Count returns the number of entries captured at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCatalog is a test double for domain.DocumentCatalog.
type MockCatalog struct {
	Docs map[string]*domain.Document
}

// NewMockCatalog creates a MockCatalog holding docs.
func NewMockCatalog(docs ...*domain.Document) *MockCatalog {
	m := &MockCatalog{Docs: make(map[string]*domain.Document)}
	for _, d := range docs {
		m.Docs[d.Path] = d
	}
	return m
}

// Lookup returns the document at path.
func (m *MockCatalog) Lookup(path string) (*domain.Document, bool) {
	d, ok := m.Docs[path]
	return d, ok
}

// List returns all documents sorted by path.
func (m *MockCatalog) List() []*domain.Document {
	out := make([]*domain.Document, 0, len(m.Docs))
	for _, d := range m.Docs {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *domain.Document) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	Global     domain.ConfigInfo
	Local      domain.ConfigInfo
	InitCalled bool
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.Global
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.Local
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitCalled = true
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Global.Exists {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, m.Global.Path)
	}
	m.Global.Exists = true
	m.Global.Content = domain.RenderConfigTemplate(cfg)
	return nil
}

// MockNotifier is a test double for domain.ChangeNotifier.
// Send a value on C to simulate a change.
type MockNotifier struct {
	C chan struct{}
}

// NewMockNotifier creates a MockNotifier with a buffered channel.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{C: make(chan struct{}, 1)}
}

// Watch returns the notifier channel.
func (m *MockNotifier) Watch(_ context.Context) (<-chan struct{}, error) {
	return m.C, nil
}

// Ensure mocks implement their interfaces.
var (
	_ domain.KeyValueStore     = (*MockKeyValueStore)(nil)
	_ domain.TaskRegistry      = (*MockTaskRegistry)(nil)
	_ domain.NavigationHistory = (*MockHistory)(nil)
	_ domain.TitleSink         = (*MockTitleSink)(nil)
	_ domain.Logger            = (*MockLogger)(nil)
	_ domain.DocumentCatalog   = (*MockCatalog)(nil)
	_ domain.ConfigLoader      = (*MockConfigLoader)(nil)
	_ domain.ConfigManager     = (*MockConfigManager)(nil)
	_ domain.ChangeNotifier    = (*MockNotifier)(nil)
)
