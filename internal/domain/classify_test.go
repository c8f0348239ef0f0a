package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

func TestClassify_Idempotent(t *testing.T) {
	scope := m.NewScope("app")

	first := Classify("com/example/App.class", scope)
	second := Classify("com/example/App.class", scope)

	assert.Equal(t, first, second)
	assert.Same(t, scope, first.Scope)
}

func TestClassOf_PlainResource(t *testing.T) {
	_, ok := ClassOf(Classify("META-INF/services/com.example.Spi", m.NewScope("app")))

	assert.False(t, ok)
}

func TestClassOf_DescriptorsExcluded(t *testing.T) {
	scope := m.NewScope("app")

	for _, name := range []string{"module-info.class", "com/example/package-info.class"} {
		_, ok := ClassOf(Classify(name, scope))
		assert.False(t, ok, name)
	}

	// A type merely named like a descriptor prefix is still a class.
	_, ok := ClassOf(Classify("com/example/package-information.class", scope))
	assert.True(t, ok)
}

func TestClassOf_Names(t *testing.T) {
	tests := []struct {
		resource    string
		wantClass   string
		wantPackage string
		wantSimple  string
		topLevel    bool
	}{
		{
			resource:    "Foo.class",
			wantClass:   "Foo",
			wantPackage: "",
			wantSimple:  "Foo",
			topLevel:    true,
		},
		{
			resource:    "a/b/Foo.class",
			wantClass:   "a.b.Foo",
			wantPackage: "a.b",
			wantSimple:  "Foo",
			topLevel:    true,
		},
		{
			resource:    "a/b/Bar$Foo.class",
			wantClass:   "a.b.Bar$Foo",
			wantPackage: "a.b",
			wantSimple:  "Foo",
			topLevel:    false,
		},
		{
			resource:    "a/b/Bar$1.class",
			wantClass:   "a.b.Bar$1",
			wantPackage: "a.b",
			wantSimple:  "",
			topLevel:    false,
		},
		{
			resource:    "a/b/Bar$1Local.class",
			wantClass:   "a.b.Bar$1Local",
			wantPackage: "a.b",
			wantSimple:  "Local",
			topLevel:    false,
		},
		{
			resource:    "a/b/Outer$Middle$Inner.class",
			wantClass:   "a.b.Outer$Middle$Inner",
			wantPackage: "a.b",
			wantSimple:  "Inner",
			topLevel:    false,
		},
	}

	for _, test := range tests {
		t.Run(test.resource, func(t *testing.T) {
			class, ok := ClassOf(Classify(test.resource, m.NewScope("app")))
			require.True(t, ok)

			assert.Equal(t, test.wantClass, class.ClassName())
			assert.Equal(t, test.wantPackage, class.PackageName())
			assert.Equal(t, test.wantSimple, class.SimpleName())
			assert.Equal(t, test.topLevel, class.IsTopLevel())
		})
	}
}
