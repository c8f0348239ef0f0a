package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

func TestLocalInventoryStore_Roundtrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	app := m.NewScope("app")
	boot := m.NewScope("boot")
	saved := m.NewInventory([]m.Resource{
		{Name: "a/Foo.class", Scope: app},
		{Name: "boot.txt", Scope: boot},
		{Name: "data.txt", Scope: app},
	})

	store := NewLocalInventoryStore()
	require.NoError(t, store.SaveInventory(dir, saved))

	loaded, err := store.LoadInventory(dir)
	require.NoError(t, err)

	require.Equal(t, saved.Len(), loaded.Len())

	for i, resource := range loaded.Resources() {
		assert.Equal(t, saved.Resources()[i].Name, resource.Name)
		assert.Equal(t, saved.Resources()[i].Scope.String(), resource.Scope.String())
	}

	// Records naming the same scope share one rebuilt Scope value.
	resources := loaded.Resources()
	assert.Same(t, resources[0].Scope, resources[2].Scope)
	assert.NotSame(t, resources[0].Scope, resources[1].Scope)
}

func TestLocalInventoryStore_SaveEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	store := NewLocalInventoryStore()
	require.NoError(t, store.SaveInventory(dir, m.NewInventory(nil)))

	loaded, err := store.LoadInventory(dir)
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
}

func TestLocalInventoryStore_LoadMissing(t *testing.T) {
	_, err := NewLocalInventoryStore().LoadInventory(filepath.Join(t.TempDir(), "absent"))

	assert.Error(t, err)
}
