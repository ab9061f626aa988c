package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/domain"
)

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		profileDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		writeFile(t, filepath.Join(profileDir, domain.ConfigFileName), configContent)

		info := NewManager(profileDir, "").GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(profileDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		profileDir := t.TempDir()

		info := NewManager(profileDir, "").GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(profileDir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("returns empty info without profile dir", func(t *testing.T) {
		info := NewManager("", "").GetGlobalConfigInfo()
		assert.Equal(t, domain.ConfigInfo{}, info)
	})
}

func TestManager_GetLocalConfigInfo(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, filepath.Join(localDir, domain.LocalConfigFileName), "[ui]\ntheme = \"light\"")

	info := NewManager("", localDir).GetLocalConfigInfo()

	assert.True(t, info.Exists)
	assert.Equal(t, filepath.Join(localDir, domain.LocalConfigFileName), info.Path)
	assert.Contains(t, info.Content, "light")
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		profileDir := filepath.Join(t.TempDir(), "docwin")
		manager := NewManager(profileDir, "")

		require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))

		content, err := os.ReadFile(filepath.Join(profileDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "[registry]")
		assert.Contains(t, string(content), `# fallback = "/"`)
	})

	t.Run("created file loads as defaults", func(t *testing.T) {
		profileDir := t.TempDir()
		require.NoError(t, NewManager(profileDir, "").InitGlobalConfig(domain.NewDefaultConfig()))

		cfg, err := NewLoader(profileDir, "").Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.Warnings)
		assert.Equal(t, domain.StoreJSON, cfg.Registry.Store)
	})

	t.Run("returns error when file exists", func(t *testing.T) {
		profileDir := t.TempDir()
		writeFile(t, filepath.Join(profileDir, domain.ConfigFileName), "existing")

		err := NewManager(profileDir, "").InitGlobalConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error without profile dir", func(t *testing.T) {
		err := NewManager("", "").InitGlobalConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrNoProfileDir)
	})
}
