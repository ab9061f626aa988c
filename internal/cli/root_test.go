package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/domain"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	routes := mockLaunchTUI(t)

	root := NewRootCommand(nil, "test-version")
	_, err := execute(t, root)

	assert.NoError(t, err)
	assert.Equal(t, []string{"/"}, *routes)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	routes := mockLaunchTUI(t)

	root := NewRootCommand(nil, "test-version")
	out, err := execute(t, root, "--help")

	assert.NoError(t, err)
	assert.Empty(t, *routes, "launchTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, out, "Documents:")
	assert.Contains(t, out, "Minimized Tasks:")
	assert.Contains(t, out, "--profile")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	out, err := execute(t, root, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	profileDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, domain.ConfigFileName), []byte("[ui]\nfont = \"mono\"\n"), 0o600))
	c, err := app.New(profileDir, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	root := NewRootCommand(c, "test")
	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"tasks", "list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "Warning: unknown key in [ui]: font")
}

func TestOpenCommand(t *testing.T) {
	c := newTestContainer(t)
	routes := mockLaunchTUI(t)

	_, err := execute(t, newOpenCommand(c), "/docs/trees?tab=nope#shape")
	require.NoError(t, err)
	assert.Equal(t, []string{"/docs/trees?tab=big-picture#shape"}, *routes)

	_, err = execute(t, newOpenCommand(c), "/docs/missing")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.Len(t, *routes, 1)

	_, err = execute(t, newOpenCommand(c), "docs/trees")
	assert.ErrorIs(t, err, domain.ErrInvalidLocator)
}
