package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

func manifestClasspath(value string) *m.Manifest {
	return &m.Manifest{Attributes: map[string]string{
		"Manifest-Version":   "1.0",
		m.ClassPathAttribute: value,
	}}
}

func TestManifestEntries_NilManifest(t *testing.T) {
	assert.Empty(t, ManifestEntries("some.jar", nil))
}

func TestManifestEntries_NoClassPath(t *testing.T) {
	manifest := &m.Manifest{Attributes: map[string]string{"Manifest-Version": "1.0"}}
	assert.Empty(t, ManifestEntries("base.jar", manifest))
}

func TestManifestEntries_EmptyClassPath(t *testing.T) {
	assert.Empty(t, ManifestEntries("base.jar", manifestClasspath("")))
	assert.Empty(t, ManifestEntries("base.jar", manifestClasspath("   ")))
}

func TestManifestEntries_BadClassPath(t *testing.T) {
	assert.Empty(t, ManifestEntries("base.jar", manifestClasspath("nosuchscheme:an_invalid^path")))
}

func TestManifestEntries_PathWithStrangeCharacter(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("file:the^file.jar"))
	assert.Equal(t, []m.Entry{"base/the^file.jar"}, got)
}

func TestManifestEntries_RelativeDirectory(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("with/relative/dir"))
	assert.Equal(t, []m.Entry{"base/with/relative/dir"}, got)
}

func TestManifestEntries_RelativeJar(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("with/relative.jar"))
	assert.Equal(t, []m.Entry{"base/with/relative.jar"}, got)
}

func TestManifestEntries_JarInCurrentDirectory(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("current.jar"))
	assert.Equal(t, []m.Entry{"base/current.jar"}, got)
}

func TestManifestEntries_AbsoluteDirectory(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("file:/with/absolute/dir"))
	assert.Equal(t, []m.Entry{"/with/absolute/dir"}, got)
}

func TestManifestEntries_AbsoluteJar(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("file:/with/absolute.jar"))
	assert.Equal(t, []m.Entry{"/with/absolute.jar"}, got)
}

func TestManifestEntries_MultiplePaths(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("file:/with/absolute.jar relative.jar  relative/dir"))
	assert.Equal(t, []m.Entry{"/with/absolute.jar", "base/relative.jar", "base/relative/dir"}, got)
}

func TestManifestEntries_LeadingBlanks(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath(" relative.jar"))
	assert.Equal(t, []m.Entry{"base/relative.jar"}, got)
}

func TestManifestEntries_TrailingBlanks(t *testing.T) {
	got := ManifestEntries("base/some.jar", manifestClasspath("relative.jar "))
	assert.Equal(t, []m.Entry{"base/relative.jar"}, got)
}

func TestManifestEntries_DuplicatesKept(t *testing.T) {
	// Dedup is the scanner's job via its visited set, not the extractor's.
	got := ManifestEntries("base/some.jar", manifestClasspath("a.jar a.jar"))
	assert.Equal(t, []m.Entry{"base/a.jar", "base/a.jar"}, got)
}
