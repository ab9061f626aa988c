// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/docwin/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	profileDir string // Path to the profile directory (e.g., ~/.config/docwin)
	localDir   string // Directory searched for the local override file
}

// NewLoader creates a new Loader.
// An empty localDir disables the local override.
func NewLoader(profileDir, localDir string) *Loader {
	return &Loader{
		profileDir: profileDir,
		localDir:   localDir,
	}
}

// DefaultProfileDir returns the default profile directory,
// $XDG_CONFIG_HOME/docwin or ~/.config/docwin.
func DefaultProfileDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrNoProfileDir, err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.ProfileDir(configHome), nil
}

// Load returns the merged configuration (default <- global <- local).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var local *domain.Config
	if l.localDir != "" {
		local, err = l.loadFile(filepath.Join(l.localDir, domain.LocalConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.profileDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.profileDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// stringFields maps the keys of one section to the fields they set.
type stringFields map[string]*string

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	sections := map[string]stringFields{
		"registry": {
			"store":     &res.Registry.Store,
			"key":       &res.Registry.Key,
			"namespace": &res.Registry.Namespace,
		},
		"navigation": {
			"fallback": &res.Navigation.Fallback,
		},
		"catalog": {
			"dir": &res.Catalog.Dir,
		},
		"log": {
			"level": &res.Log.Level,
		},
		"ui": {
			"theme": &res.UI.Theme,
		},
	}

	for section, value := range raw {
		fields, known := sections[section]
		if !known {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", section))
			continue
		}
		for k, v := range m {
			dst, known := fields[k]
			if !known {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
				continue
			}
			s, ok := v.(string)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("[%s] %s must be a string", section, k))
				continue
			}
			*dst = s
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Registry:   base.Registry,
		Navigation: base.Navigation,
		Catalog:    base.Catalog,
		Log:        base.Log,
		UI:         base.UI,
		Warnings:   append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Registry.Store != "" {
		result.Registry.Store = override.Registry.Store
	}
	if override.Registry.Key != "" {
		result.Registry.Key = override.Registry.Key
	}
	if override.Registry.Namespace != "" {
		result.Registry.Namespace = override.Registry.Namespace
	}
	if override.Navigation.Fallback != "" {
		result.Navigation.Fallback = override.Navigation.Fallback
	}
	if override.Catalog.Dir != "" {
		result.Catalog.Dir = override.Catalog.Dir
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.UI.Theme != "" {
		result.UI.Theme = override.UI.Theme
	}

	return result
}
