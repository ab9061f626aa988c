// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/infra/browser"
	"github.com/runoshun/docwin/internal/infra/catalog"
	"github.com/runoshun/docwin/internal/infra/config"
	"github.com/runoshun/docwin/internal/infra/gitstore"
	"github.com/runoshun/docwin/internal/infra/jsonstore"
	"github.com/runoshun/docwin/internal/infra/logging"
	"github.com/runoshun/docwin/internal/infra/registry"
	"github.com/runoshun/docwin/internal/infra/sqlitestore"
	"github.com/runoshun/docwin/internal/infra/watcher"
	"github.com/runoshun/docwin/internal/usecase"
	"github.com/runoshun/docwin/internal/usecase/shared"
	"github.com/runoshun/docwin/internal/window"
)

// Config holds the application paths.
type Config struct {
	ProfileDir string // Profile directory holding config, registry and logs
	WorkDir    string // Directory searched for the local override file
	StorePath  string // Registry backend location
}

// newConfig derives the paths for a profile.
func newConfig(profileDir, workDir, store string) Config {
	return Config{
		ProfileDir: profileDir,
		WorkDir:    workDir,
		StorePath:  domain.RegistryStorePath(profileDir, store),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Registry      domain.TaskRegistry
	Notifier      domain.ChangeNotifier // nil when the backend cannot be watched
	Catalog       domain.DocumentCatalog
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config

	// Configuration
	Config   Config
	Warnings []string // Problems found while loading config and catalog

	closers []io.Closer
}

// New creates a new Container for the given profile directory.
// An empty profileDir uses the default ($XDG_CONFIG_HOME/docwin).
func New(profileDir, workDir string) (*Container, error) {
	if profileDir == "" {
		dir, err := config.DefaultProfileDir()
		if err != nil {
			return nil, err
		}
		profileDir = dir
	}

	configLoader := config.NewLoader(profileDir, workDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := newConfig(profileDir, workDir, appConfig.Registry.Store)
	c := &Container{
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(profileDir, workDir),
		AppConfig:     appConfig,
		Config:        cfg,
		Warnings:      append([]string{}, appConfig.Warnings...),
	}

	fileLogger := logging.New(profileDir, logging.ParseLevel(appConfig.Log.Level))
	c.closers = append(c.closers, fileLogger)
	c.Logger = fileLogger

	// Create the registry backend based on config
	var store domain.KeyValueStore
	switch appConfig.Registry.Store {
	case domain.StoreSQLite:
		db, err := sqlitestore.Open(cfg.StorePath)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.closers = append(c.closers, db)
		store = db
		c.Notifier = watcher.New(watcher.Config{Path: cfg.StorePath, Logger: c.Logger})
	case domain.StoreGit:
		repo, err := gitstore.New(cfg.StorePath, appConfig.Registry.Namespace)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		store = repo
	default:
		store = jsonstore.New(cfg.StorePath)
		c.Notifier = watcher.New(watcher.Config{Path: cfg.StorePath, Logger: c.Logger})
	}
	c.Registry = registry.New(store, appConfig.Registry.Key, c.Logger)

	catalogDir := appConfig.Catalog.Dir
	if catalogDir != "" && !filepath.IsAbs(catalogDir) && workDir != "" {
		catalogDir = filepath.Join(workDir, catalogDir)
	}
	docs, err := catalog.New(catalogDir, c.Logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Catalog = docs
	c.Warnings = append(c.Warnings, docs.Warnings()...)

	c.Logger.Debug("", "app", fmt.Sprintf("profile %s, %s registry at %s", profileDir, appConfig.Registry.Store, cfg.StorePath))
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, reg domain.TaskRegistry, docs domain.DocumentCatalog, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Registry:  reg,
		Catalog:   docs,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Close releases open files and database handles.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// WindowFactory returns a window factory bound to a browser.
func (c *Container) WindowFactory(b *browser.Browser) *window.Factory {
	return window.NewFactory(window.Deps{
		Location: b,
		History:  b,
		Title:    b,
		Registry: c.Registry,
		Logger:   c.Logger,
		Fallback: c.AppConfig.Navigation.Fallback,
	})
}

// OpenWindow mounts a window for raw in a fresh browser whose only entry is raw.
func (c *Container) OpenWindow(raw string) (*browser.Browser, *window.Session, error) {
	doc, loc, err := shared.LookupDocument(c.Catalog, raw)
	if err != nil {
		return nil, nil, err
	}
	b := browser.New(loc)
	s, err := c.WindowFactory(b).Mount(doc)
	if err != nil {
		return nil, nil, err
	}
	return b, s, nil
}

// UseCase factory methods

// MinimizeDocumentUseCase returns a new MinimizeDocument use case.
func (c *Container) MinimizeDocumentUseCase() *usecase.MinimizeDocument {
	return usecase.NewMinimizeDocument(c.Registry, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Registry)
}

// DismissTaskUseCase returns a new DismissTask use case.
func (c *Container) DismissTaskUseCase() *usecase.DismissTask {
	return usecase.NewDismissTask(c.Registry, c.Logger)
}

// ClearTasksUseCase returns a new ClearTasks use case.
func (c *Container) ClearTasksUseCase() *usecase.ClearTasks {
	return usecase.NewClearTasks(c.Registry, c.Logger)
}

// RestoreTaskUseCase returns a new RestoreTask use case.
func (c *Container) RestoreTaskUseCase() *usecase.RestoreTask {
	return usecase.NewRestoreTask(c.Registry, c.Catalog, c.Logger)
}

// ListDocumentsUseCase returns a new ListDocuments use case.
func (c *Container) ListDocumentsUseCase() *usecase.ListDocuments {
	return usecase.NewListDocuments(c.Catalog, c.Registry)
}

// ShowDocumentUseCase returns a new ShowDocument use case.
func (c *Container) ShowDocumentUseCase() *usecase.ShowDocument {
	return usecase.NewShowDocument(c.Catalog)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
