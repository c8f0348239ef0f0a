package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classNames(classes []ClassResource) []string {
	names := make([]string, 0, len(classes))
	for _, class := range classes {
		names = append(names, class.ClassName())
	}

	return names
}

func TestNewInventory_SortsDeterministically(t *testing.T) {
	app := NewScope("app")
	boot := NewScope("boot")

	inventory := NewInventory([]Resource{
		{Name: "b.txt", Scope: app},
		{Name: "a.txt", Scope: app},
		{Name: "a.txt", Scope: boot},
	})

	resources := inventory.Resources()
	require.Equal(t, 3, inventory.Len())
	assert.Equal(t, Resource{Name: "a.txt", Scope: app}, resources[0])
	assert.Equal(t, Resource{Name: "a.txt", Scope: boot}, resources[1])
	assert.Equal(t, Resource{Name: "b.txt", Scope: app}, resources[2])
}

func TestInventory_Classes(t *testing.T) {
	scope := NewScope("app")
	inventory := NewInventory([]Resource{
		{Name: "a/Foo.class", Scope: scope},
		{Name: "a/data.txt", Scope: scope},
		{Name: "module-info.class", Scope: scope},
	})

	assert.Equal(t, []string{"a.Foo"}, classNames(inventory.Classes()))
}

func TestInventory_TopLevelClasses(t *testing.T) {
	scope := NewScope("app")
	inventory := NewInventory([]Resource{
		{Name: "a/Foo.class", Scope: scope},
		{Name: "a/Foo$Inner.class", Scope: scope},
		{Name: "a/Foo$1.class", Scope: scope},
	})

	assert.Equal(t, []string{"a.Foo", "a.Foo$1", "a.Foo$Inner"}, classNames(inventory.Classes()))
	assert.Equal(t, []string{"a.Foo"}, classNames(inventory.TopLevelClasses()))
}

func TestInventory_ClassesInPackage(t *testing.T) {
	scope := NewScope("app")
	inventory := NewInventory([]Resource{
		{Name: "a/Foo.class", Scope: scope},
		{Name: "a/b/Bar.class", Scope: scope},
		{Name: "Baz.class", Scope: scope},
	})

	assert.Equal(t, []string{"a.Foo"}, classNames(inventory.ClassesInPackage("a")))
	assert.Equal(t, []string{"Baz"}, classNames(inventory.ClassesInPackage("")))
	assert.Empty(t, inventory.ClassesInPackage("a.b.c"))
}

func TestInventory_TopLevelClassesRecursive(t *testing.T) {
	scope := NewScope("app")
	inventory := NewInventory([]Resource{
		{Name: "a/Foo.class", Scope: scope},
		{Name: "a/b/Bar.class", Scope: scope},
		{Name: "ab/Other.class", Scope: scope},
	})

	// "ab" is not below "a": prefix matching is segment-aware.
	assert.Equal(t, []string{"a.Foo", "a.b.Bar"}, classNames(inventory.TopLevelClassesRecursive("a")))
}

func TestEntryOwnership_FirstWriteWins(t *testing.T) {
	parent := NewScope("parent")
	child := NewScope("child")

	ownership := NewEntryOwnership()
	assert.True(t, ownership.Insert(NewEntry("/lib/a.jar"), parent))
	assert.False(t, ownership.Insert(NewEntry("/lib/a.jar"), child))
	assert.True(t, ownership.Insert(NewEntry("/lib/b.jar"), child))

	assert.Equal(t, 2, ownership.Len())
	assert.Equal(t, []Entry{"/lib/a.jar", "/lib/b.jar"}, ownership.Entries())
	assert.Same(t, parent, ownership.Owner(NewEntry("/lib/a.jar")))
	assert.Same(t, child, ownership.Owner(NewEntry("/lib/b.jar")))
	assert.Nil(t, ownership.Owner(NewEntry("/lib/c.jar")))
}

func TestEntry_Canonicalization(t *testing.T) {
	assert.Equal(t, Entry("a/b/c.jar"), NewEntry("a/b/./c.jar"))
	assert.Equal(t, Entry("a/c.jar"), NewEntry("a/b/../c.jar"))
	assert.Equal(t, NewEntry("a/b/c.jar"), NewEntry("a//b/c.jar"))
}

func TestEntry_CanonicalAbsolutizes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o755))

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	assert.Equal(t, NewEntry(filepath.Join(dir, "lib")).Canonical(), NewEntry("lib").Canonical())
}

func TestEntry_CanonicalResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "lib")
	require.NoError(t, os.MkdirAll(target, 0o755))

	alias := filepath.Join(dir, "alias")
	if err := os.Symlink(target, alias); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.Equal(t, NewEntry(target).Canonical(), NewEntry(alias).Canonical())
}

func TestEntry_CanonicalMissingPathKeptAbsolute(t *testing.T) {
	canonical := NewEntry("/no/such/path/anywhere.jar").Canonical()
	assert.Equal(t, Entry("/no/such/path/anywhere.jar"), canonical)
}

func TestEntry_HasArchiveSuffix(t *testing.T) {
	assert.True(t, NewEntry("lib/app.jar").HasArchiveSuffix())
	assert.True(t, NewEntry("lib/app.ZIP").HasArchiveSuffix())
	assert.False(t, NewEntry("lib/app.war").HasArchiveSuffix())
	assert.False(t, NewEntry("lib/classes").HasArchiveSuffix())
}
