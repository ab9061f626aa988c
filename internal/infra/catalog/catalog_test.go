package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/testutil"
)

func TestNew_BuiltinDocuments(t *testing.T) {
	c, err := New("", nil)
	require.NoError(t, err)
	assert.Empty(t, c.Warnings())

	var paths []string
	for _, d := range c.List() {
		paths = append(paths, d.Path)
	}
	assert.Equal(t, []string{"/docs/graphs", "/docs/hashing", "/docs/sorting", "/docs/trees"}, paths)

	trees, ok := c.Lookup("/docs/trees")
	require.True(t, ok)
	assert.Equal(t, "Trees", trees.Name)
	assert.Equal(t,
		[]domain.TabID{"big-picture", "concepts", "examples", "glossary"},
		trees.TabIDs())
	assert.Equal(t, "Trees (Big Picture)", trees.WindowTitle(trees.DefaultTab()))
}

func TestNew_BuiltinDocumentsAreValid(t *testing.T) {
	c, err := New("", nil)
	require.NoError(t, err)

	for _, d := range c.List() {
		assert.NoError(t, d.Validate(), d.Path)
		for _, tab := range d.Tabs {
			assert.NotEmpty(t, tab.Sections, "%s tab %s", d.Path, tab.ID)
		}
	}
}

func TestLookup_Missing(t *testing.T) {
	c, err := New("", nil)
	require.NoError(t, err)

	_, ok := c.Lookup("/docs/missing")
	assert.False(t, ok)
}

func TestNew_ExtraDirOverridesAndSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	override := `
path: /docs/trees
name: Custom Trees
tabs:
  - id: only
    label: Only
    sections:
      - id: s
        label: S
`
	invalid := `
path: docs/no-slash
name: Broken
tabs: []
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trees.yaml"), []byte(override), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte(invalid), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))
	logger := &testutil.MockLogger{}

	c, err := New(dir, logger)
	require.NoError(t, err)

	trees, ok := c.Lookup("/docs/trees")
	require.True(t, ok)
	assert.Equal(t, "Custom Trees", trees.Name)
	assert.Len(t, c.List(), 4)

	require.Len(t, c.Warnings(), 1)
	assert.Contains(t, c.Warnings()[0], "broken.yml")
	assert.Equal(t, 1, logger.Count("WARN"))
}

func TestNew_MissingExtraDirWarns(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)

	assert.Len(t, c.Warnings(), 1)
	assert.Len(t, c.List(), 4)
}

func TestNew_ExtraPathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.yaml")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o600))

	_, err := New(file, nil)
	assert.Error(t, err)
}

func TestNewFromFS_MalformedYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml": {Data: []byte("path: /a\nname: A\ntabs:\n  - id: t\n    label: T\n")},
		"bad.yaml":  {Data: []byte("path: [unterminated")},
		"dup.yaml":  {Data: []byte("path: /b\nname: B\ntabs:\n  - id: t\n    label: T\n  - id: t\n    label: T2\n")},
	}

	c, err := NewFromFS(fsys, nil)
	require.NoError(t, err)

	assert.Len(t, c.List(), 1)
	assert.Len(t, c.Warnings(), 2)
	_, ok := c.Lookup("/a")
	assert.True(t, ok)
}
