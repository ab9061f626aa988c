package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/infra/catalog"
	"github.com/runoshun/docwin/internal/testutil"
)

type testEnv struct {
	model    *Model
	registry *testutil.MockTaskRegistry
	logger   *testutil.MockLogger
}

// newTestEnv builds a model over the built-in catalog and an in-memory registry.
// configure runs before Init.
func newTestEnv(t *testing.T, start string, configure func(c *app.Container), tasks ...domain.MinimizedTask) *testEnv {
	t.Helper()

	docs, err := catalog.New("", nil)
	require.NoError(t, err)

	reg := testutil.NewMockTaskRegistry(tasks...)
	logger := &testutil.MockLogger{}
	cfg := domain.NewDefaultConfig()
	cfg.UI.Theme = "notty"

	c := app.NewWithDeps(app.Config{}, cfg, reg, docs, logger)
	if configure != nil {
		configure(c)
	}

	m := New(c, domain.MustParseLocator(start))
	t.Cleanup(m.Shutdown)
	drive(t, m, m.Init())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	return &testEnv{model: m, registry: reg, logger: logger}
}

// press sends a key and runs the resulting commands.
func (e *testEnv) press(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := e.model.Update(keyMsg(k))
		drive(t, e.model, cmd)
	}
}

// keyMsg builds the tea.KeyMsg for a key name.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// drive runs cmd and feeds every resulting Msg back into the model until
// no work is left. Program-level messages are dropped.
func drive(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "command loop did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case Msg:
			_, follow := m.Update(msg)
			queue = append(queue, follow)
		}
	}
}
