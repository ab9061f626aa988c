package domain

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// ConfigFileName is the name of the configuration file inside the profile directory.
const ConfigFileName = "config.toml"

// LocalConfigFileName is the per-directory override file.
const LocalConfigFileName = ".docwin.toml"

// Registry store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
	StoreGit    = "git"
)

// Defaults.
const (
	DefaultRegistryKey   = "minimized-tasks"
	DefaultFallbackRoute = "/"
	DefaultLogLevel      = "info"
	DefaultTheme         = "dark"
	DefaultGitNamespace  = "docwin"
)

// Config represents the application configuration.
type Config struct {
	Warnings   []string         `toml:"-"`
	Registry   RegistryConfig   `toml:"registry"`
	Navigation NavigationConfig `toml:"navigation"`
	Catalog    CatalogConfig    `toml:"catalog"`
	Log        LogConfig        `toml:"log"`
	UI         UIConfig         `toml:"ui"`
}

// RegistryConfig holds settings for the minimized task registry from [registry].
type RegistryConfig struct {
	Store     string `toml:"store,omitempty"`     // Backend: "json" (default), "sqlite" or "git"
	Key       string `toml:"key,omitempty"`       // Namespace key shared by every window
	Namespace string `toml:"namespace,omitempty"` // Ref namespace for the git backend
}

// NavigationConfig holds settings from [navigation].
type NavigationConfig struct {
	Fallback string `toml:"fallback,omitempty"` // Route used by close when there is no history
}

// CatalogConfig holds settings from [catalog].
type CatalogConfig struct {
	Dir string `toml:"dir,omitempty"` // Extra directory of YAML documents
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// UIConfig holds terminal UI settings from [ui].
type UIConfig struct {
	Theme string `toml:"theme,omitempty"` // glamour style: dark, light, notty
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Store:     StoreJSON,
			Key:       DefaultRegistryKey,
			Namespace: DefaultGitNamespace,
		},
		Navigation: NavigationConfig{
			Fallback: DefaultFallbackRoute,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			Theme: DefaultTheme,
		},
	}
}

// Validate checks the values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.Registry.Store {
	case StoreJSON, StoreSQLite, StoreGit:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.Registry.Store)
	}
	if strings.TrimSpace(c.Registry.Key) == "" {
		return ErrEmptyRegistryKey
	}
	if !strings.HasPrefix(c.Navigation.Fallback, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidFallback, c.Navigation.Fallback)
	}
	return nil
}

const configTemplateContent = `# docwin configuration
# Lines starting with # are defaults; uncomment to change them.

[registry]
# Backend for minimized windows: "json", "sqlite" or "git"
# store = "<< .Registry.Store >>"
# Key shared by every document window
# key = "<< .Registry.Key >>"
# Ref namespace used by the git backend
# namespace = "<< .Registry.Namespace >>"

[navigation]
# Where closing a window goes when there is nothing to step back to
# fallback = "<< .Navigation.Fallback >>"

[catalog]
# Extra directory of YAML documents, merged over the built-in catalog
# dir = ""

[log]
# level = "<< .Log.Level >>"

[ui]
# theme = "<< .UI.Theme >>"
`

// RenderConfigTemplate renders the commented default configuration file.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
