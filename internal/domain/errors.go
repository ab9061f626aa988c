package domain

import "errors"

// Domain errors.
var (
	ErrUnknownTab         = errors.New("unknown tab")
	ErrUnknownSection     = errors.New("unknown section")
	ErrInvalidDocument    = errors.New("invalid document")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidLocator     = errors.New("invalid locator")
	ErrNoHistory          = errors.New("no previous history entry")
	ErrTaskNotFound       = errors.New("minimized task not found")
	ErrRegistryCorrupted  = errors.New("task registry is corrupted")
	ErrConfigExists       = errors.New("config file already exists")
	ErrUnknownStore       = errors.New("unknown registry store")
	ErrNoProfileDir       = errors.New("cannot determine profile directory")
	ErrEmptyRegistryKey   = errors.New("registry key cannot be empty")
	ErrInvalidFallback    = errors.New("fallback route must be an absolute path")
	ErrStoreNotConfigured = errors.New("registry store is not configured")
)
