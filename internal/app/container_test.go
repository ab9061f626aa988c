package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase"
)

func newTestContainer(t *testing.T, configTOML string) *Container {
	t.Helper()
	profileDir := t.TempDir()
	if configTOML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(profileDir, domain.ConfigFileName), []byte(configTOML), 0o600))
	}
	c, err := New(profileDir, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_DefaultsToJSONStore(t *testing.T) {
	c := newTestContainer(t, "")

	assert.NotNil(t, c.Notifier)
	assert.NoFileExists(t, c.Config.StorePath, "json store is created on first write")
	assert.Equal(t, filepath.Join(c.Config.ProfileDir, "registry.json"), c.Config.StorePath)
	assert.Empty(t, c.Warnings)
	assert.NotEmpty(t, c.Catalog.List())
}

func TestNew_SelectsBackend(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		c := newTestContainer(t, "[registry]\nstore = \"sqlite\"\n")
		assert.Equal(t, filepath.Join(c.Config.ProfileDir, "registry.db"), c.Config.StorePath)
		assert.FileExists(t, c.Config.StorePath)
		assert.NotNil(t, c.Notifier)
	})

	t.Run("git", func(t *testing.T) {
		c := newTestContainer(t, "[registry]\nstore = \"git\"\n")
		assert.Equal(t, filepath.Join(c.Config.ProfileDir, "registry.git"), c.Config.StorePath)
		assert.DirExists(t, c.Config.StorePath)
		assert.Nil(t, c.Notifier)
	})
}

func TestNew_InvalidConfig(t *testing.T) {
	profileDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, domain.ConfigFileName), []byte("[registry]\nstore = \"redis\"\n"), 0o600))

	_, err := New(profileDir, "")
	assert.ErrorIs(t, err, domain.ErrUnknownStore)
}

func TestNew_WarningsCollected(t *testing.T) {
	c := newTestContainer(t, "[registry]\ncolour = \"red\"\n\n[catalog]\ndir = \"missing-docs\"\n")

	require.Len(t, c.Warnings, 2)
	assert.Contains(t, c.Warnings[0], "colour")
	assert.Contains(t, c.Warnings[1], "missing-docs")
}

func TestContainer_MinimizeAcrossBackends(t *testing.T) {
	for _, store := range []string{domain.StoreJSON, domain.StoreSQLite, domain.StoreGit} {
		t.Run(store, func(t *testing.T) {
			c := newTestContainer(t, "[registry]\nstore = \""+store+"\"\n")

			_, s, err := c.OpenWindow("/docs/trees")
			require.NoError(t, err)
			_, err = s.Minimize(context.Background())
			require.NoError(t, err)

			out, err := c.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
			require.NoError(t, err)
			assert.Equal(t, []domain.MinimizedTask{{
				ID:    "help:/docs/trees",
				Title: "Trees",
				URL:   "/docs/trees?tab=big-picture",
				Kind:  "help",
			}}, out.Tasks)
		})
	}
}

func TestContainer_OpenWindow(t *testing.T) {
	c := newTestContainer(t, "[navigation]\nfallback = \"/docs\"\n")

	b, s, err := c.OpenWindow("/docs/graphs?tab=bogus-value")
	require.NoError(t, err)
	assert.Equal(t, domain.TabID("big-picture"), s.Active())
	assert.Equal(t, "Graphs (Big Picture)", b.Title())

	outcome, err := s.Close(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CloseFellBack, outcome)
	assert.Equal(t, "/docs", b.Locator().String())

	_, _, err = c.OpenWindow("/docs/unknown")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestContainer_LogsToProfile(t *testing.T) {
	c := newTestContainer(t, "[log]\nlevel = \"debug\"\n")

	_, s, err := c.OpenWindow("/docs/trees")
	require.NoError(t, err)
	_, err = s.Minimize(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.Close())

	content, err := os.ReadFile(domain.GlobalLogPath(c.Config.ProfileDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[window] minimized /docs/trees?tab=big-picture")
}
