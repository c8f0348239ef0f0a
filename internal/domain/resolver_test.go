package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

func TestResolveEntry(t *testing.T) {
	tests := []struct {
		name      string
		baseDir   string
		reference string
		want      m.Entry
	}{
		{"relative jar", "/home/build", "a.jar", "/home/build/a.jar"},
		{"file scheme absolute", "/home/build", "file:/usr/test/dep.jar", "/usr/test/dep.jar"},
		{"relative dir", "/home/build", "x/y/z", "/home/build/x/y/z"},
		{"relative nested jar", "/home/build", "x/y/z.jar", "/home/build/x/y/z.jar"},
		{"embedded space preserved", "/home/build", "x y.jar", "/home/build/x y.jar"},
		{"file scheme relative with caret", "base", "file:the^file.jar", "base/the^file.jar"},
		{"file scheme double slash", "base", "file:///with/absolute.jar", "/with/absolute.jar"},
		{"absolute path without scheme", "base", "/opt/lib/dep.jar", "/opt/lib/dep.jar"},
		{"dot segments cleaned", "/home/build", "../lib/./a.jar", "/home/lib/a.jar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveEntry(tt.baseDir, tt.reference)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEntry_UnsupportedScheme(t *testing.T) {
	_, ok := ResolveEntry("base", "nosuchscheme:an_invalid^path")
	assert.False(t, ok)

	_, ok = ResolveEntry("base", "http://example.com/a.jar")
	assert.False(t, ok)
}

func TestResolveEntry_SingleLetterPrefixIsNotAScheme(t *testing.T) {
	// A lone letter before a colon stays part of the path, so Windows-style
	// drive references do not get dropped as unknown schemes.
	got, ok := ResolveEntry("/base", "c:dir")
	require.True(t, ok)
	assert.Equal(t, m.Entry("/base/c:dir"), got)
}
