package gitstore

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setupMemoryStore(t *testing.T) (*Store, *git.Repository) {
	t.Helper()

	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)

	return NewWithRepo(repo, "docwin-test"), repo
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := setupMemoryStore(t)

	value, ok, err := store.Get("minimized-tasks")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestStore_SetAndGet(t *testing.T) {
	store, repo := setupMemoryStore(t)

	want := []byte(`[{"id":"help:/docs/trees","title":"Trees","url":"/docs/trees?tab=big-picture","kind":"help"}]`)
	require.NoError(t, store.Set("minimized-tasks", want))

	got, ok, err := store.Get("minimized-tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	// Value lives under the namespaced kv ref
	ref, err := repo.Reference(plumbing.ReferenceName("refs/docwin-test/kv/minimized-tasks"), true)
	require.NoError(t, err)
	assert.False(t, ref.Hash().IsZero())
}

func TestStore_SetOverwrites(t *testing.T) {
	store, _ := setupMemoryStore(t)

	require.NoError(t, store.Set("k", []byte(`[1]`)))
	require.NoError(t, store.Set("k", []byte(`[2]`)))

	got, _, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(got))
}

func TestStore_EmptyValue(t *testing.T) {
	store, _ := setupMemoryStore(t)

	require.NoError(t, store.Set("k", []byte{}))

	got, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	store, repo := setupMemoryStore(t)
	other := NewWithRepo(repo, "other")

	require.NoError(t, store.Set("k", []byte("mine")))

	_, ok, err := other.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	v, err := other.Version()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestStore_Version(t *testing.T) {
	store, _ := setupMemoryStore(t)

	v, err := store.Version()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	require.NoError(t, store.Set("k", []byte("v")))

	v, err = store.Version()
	require.NoError(t, err)
	assert.Equal(t, currentVersion, v)
}

func TestStore_InvalidKey(t *testing.T) {
	store, _ := setupMemoryStore(t)

	for _, key := range []string{"", "a..b", "has space", "/lead", "trail/", "x.lock"} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, store.Set(key, []byte("v")), ErrInvalidKey)
			_, _, err := store.Get(key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestNew_CreatesBareRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.git")

	store, err := New(path, "docwin")
	require.NoError(t, err)
	require.NoError(t, store.Set("minimized-tasks", []byte(`[]`)))

	// Reopening sees the persisted value
	reopened, err := New(path, "docwin")
	require.NoError(t, err)

	got, ok, err := reopened.Get("minimized-tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(got))
}

func TestNew_RejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.git")

	store, err := New(path, "docwin")
	require.NoError(t, err)

	data, err := yaml.Marshal(&meta{Version: currentVersion + 1})
	require.NoError(t, err)
	hash, err := store.writeBlob(data)
	require.NoError(t, err)
	require.NoError(t, store.repo.Storer.SetReference(plumbing.NewHashReference(store.metaRef(), hash)))

	_, err = New(path, "docwin")
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}
