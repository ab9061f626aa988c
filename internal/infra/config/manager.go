// Package config provides configuration loading functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/docwin/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	profileDir string // Path to the profile directory (e.g., ~/.config/docwin)
	localDir   string // Directory holding the local override file
}

// NewManager creates a new Manager.
func NewManager(profileDir, localDir string) *Manager {
	return &Manager{
		profileDir: profileDir,
		localDir:   localDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.profileDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.profileDir, domain.ConfigFileName))
}

// GetLocalConfigInfo returns information about the local override file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	if m.localDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.localDir, domain.LocalConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig creates a global config file with default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.profileDir == "" {
		return domain.ErrNoProfileDir
	}
	path := filepath.Join(m.profileDir, domain.ConfigFileName)

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.profileDir, 0o700); err != nil {
		return err
	}

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}

	return os.WriteFile(path, []byte(domain.RenderConfigTemplate(cfg)), 0o600)
}
