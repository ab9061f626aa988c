package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/infra/jsonstore"
	"github.com/runoshun/docwin/internal/testutil"
)

func TestRegistry_ReadMissingIsEmpty(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	reg := New(kv, "", nil)

	tasks := reg.Read()
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	require.NoError(t, reg.Write(tasks))
	assert.Contains(t, kv.Data, domain.DefaultRegistryKey)
}

func TestRegistry_MalformedReadsAsEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"object", `{"id":"help:/docs/trees"}`},
		{"number", `42`},
		{"string", `"minimized"`},
		{"wrong element type", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := testutil.NewMockKeyValueStore()
			kv.Data[domain.DefaultRegistryKey] = []byte(tt.data)
			logger := &testutil.MockLogger{}

			reg := New(kv, domain.DefaultRegistryKey, logger)
			assert.Empty(t, reg.Read())
			assert.Equal(t, 1, logger.Count("WARN"))
		})
	}
}

func TestRegistry_StoreErrorReadsAsEmpty(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	kv.GetErr = errors.New("disk on fire")

	reg := New(kv, "", &testutil.MockLogger{})
	assert.Empty(t, reg.Read())
}

func TestRegistry_WriteThenRead(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	reg := New(kv, "", nil)

	tasks := []domain.MinimizedTask{
		domain.NewMinimizedTask("Trees", domain.MustParseLocator("/docs/trees?tab=big-picture")),
		domain.NewMinimizedTask("Graphs", domain.MustParseLocator("/docs/graphs?tab=concepts#bfs")),
	}
	require.NoError(t, reg.Write(tasks))

	assert.JSONEq(t,
		`[{"id":"help:/docs/trees","title":"Trees","url":"/docs/trees?tab=big-picture","kind":"help"},
		  {"id":"help:/docs/graphs","title":"Graphs","url":"/docs/graphs?tab=concepts#bfs","kind":"help"}]`,
		string(kv.Data[domain.DefaultRegistryKey]))
	assert.Equal(t, tasks, reg.Read())
}

func TestRegistry_WriteEmpty(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	reg := New(kv, "", nil)

	require.NoError(t, reg.Write(nil))
	assert.Equal(t, "[]", string(kv.Data[domain.DefaultRegistryKey]))
}

func TestRegistry_WriteErrorIsReturned(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	kv.SetErr = errors.New("read-only")
	logger := &testutil.MockLogger{}

	reg := New(kv, "", logger)
	err := reg.Write([]domain.MinimizedTask{{ID: "help:/a"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, kv.SetErr)
	assert.Equal(t, 1, logger.Count("ERROR"))
}

func TestRegistry_DuplicatesNormalizedOnRead(t *testing.T) {
	kv := testutil.NewMockKeyValueStore()
	kv.Data["k"] = []byte(`[{"id":"help:/a","title":"old"},{"id":"help:/b"},{"id":"help:/a","title":"new"},{"id":""}]`)

	reg := New(kv, "k", nil)
	assert.Equal(t, []domain.MinimizedTask{
		{ID: "help:/b"},
		{ID: "help:/a", Title: "new"},
	}, reg.Read())
}

func TestRegistry_SharedAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	first := New(jsonstore.New(path), "", nil)
	second := New(jsonstore.New(path), "", nil)

	task := domain.NewMinimizedTask("Trees", domain.MustParseLocator("/docs/trees?tab=glossary"))
	require.NoError(t, first.Write(domain.UpsertTask(first.Read(), task)))

	assert.Equal(t, []domain.MinimizedTask{task}, second.Read())
}
