// Package catalog loads the static documents shown in document windows.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/docwin/internal/domain"
)

//go:embed docs/*.yaml
var builtinDocs embed.FS

const logCategory = "catalog"

// Catalog implements domain.DocumentCatalog.
type Catalog struct {
	docs     map[string]*domain.Document
	warnings []string
}

// New loads the built-in documents and, when extraDir is set, the YAML files in it.
// Documents from extraDir replace built-in ones with the same path.
// Files that fail to parse or validate are skipped and reported as warnings.
func New(extraDir string, logger domain.Logger) (*Catalog, error) {
	if logger == nil {
		logger = domain.NopLogger{}
	}

	sub, err := fs.Sub(builtinDocs, "docs")
	if err != nil {
		return nil, fmt.Errorf("open built-in documents: %w", err)
	}

	c := &Catalog{docs: make(map[string]*domain.Document)}
	if err := c.load(sub, "builtin", logger); err != nil {
		return nil, err
	}

	if extraDir != "" {
		info, statErr := os.Stat(extraDir)
		switch {
		case errors.Is(statErr, os.ErrNotExist):
			c.warn(logger, fmt.Sprintf("catalog directory %s does not exist", extraDir))
		case statErr != nil:
			return nil, fmt.Errorf("stat catalog directory: %w", statErr)
		case !info.IsDir():
			return nil, fmt.Errorf("catalog path %s is not a directory", extraDir)
		default:
			if err := c.load(os.DirFS(extraDir), extraDir, logger); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// NewFromFS loads every YAML file at the root of fsys.
func NewFromFS(fsys fs.FS, logger domain.Logger) (*Catalog, error) {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	c := &Catalog{docs: make(map[string]*domain.Document)}
	if err := c.load(fsys, "fs", logger); err != nil {
		return nil, err
	}
	return c, nil
}

// Lookup returns the document at path.
func (c *Catalog) Lookup(p string) (*domain.Document, bool) {
	doc, ok := c.docs[p]
	return doc, ok
}

// List returns all documents sorted by path.
func (c *Catalog) List() []*domain.Document {
	docs := make([]*domain.Document, 0, len(c.docs))
	for _, d := range c.docs {
		docs = append(docs, d)
	}
	slices.SortFunc(docs, func(a, b *domain.Document) int {
		return strings.Compare(a.Path, b.Path)
	})
	return docs
}

// Warnings returns the problems found while loading, in load order.
func (c *Catalog) Warnings() []string {
	return c.warnings
}

func (c *Catalog) load(fsys fs.FS, origin string, logger domain.Logger) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", origin, err)
	}

	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		doc, err := parseDocument(fsys, e.Name())
		if err != nil {
			c.warn(logger, fmt.Sprintf("skipping %s/%s: %v", origin, e.Name(), err))
			continue
		}
		if _, exists := c.docs[doc.Path]; exists {
			logger.Debug("", logCategory, fmt.Sprintf("%s/%s overrides %s", origin, e.Name(), doc.Path))
		}
		c.docs[doc.Path] = doc
	}
	return nil
}

func (c *Catalog) warn(logger domain.Logger, msg string) {
	c.warnings = append(c.warnings, msg)
	logger.Warn("", logCategory, msg)
}

func parseDocument(fsys fs.FS, name string) (*domain.Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var doc domain.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func isYAML(name string) bool {
	ext := path.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

// Ensure Catalog implements DocumentCatalog.
var _ domain.DocumentCatalog = (*Catalog)(nil)
