package domain

import (
	"path/filepath"
	"strings"
)

// ProfileDir returns the docwin profile directory inside a config home.
func ProfileDir(configHome string) string {
	return filepath.Join(configHome, "docwin")
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(profileDir string) string {
	return filepath.Join(profileDir, "logs", "docwin.log")
}

// RegistryStorePath returns the on-disk location of a registry backend.
func RegistryStorePath(profileDir, store string) string {
	switch store {
	case StoreSQLite:
		return filepath.Join(profileDir, "registry.db")
	case StoreGit:
		return filepath.Join(profileDir, "registry.git")
	default:
		return filepath.Join(profileDir, "registry.json")
	}
}

// ShortID returns the first eight characters of an instance id for log scopes.
func ShortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
