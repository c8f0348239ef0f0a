package model

import "strings"

// ClassFileSuffix is the file extension denoting a compiled type.
const ClassFileSuffix = ".class"

// Resource is one named loadable item discovered under an Entry, attributed
// to the scope that owns the entry it was found in. Values are immutable;
// equality is by (Name, Scope) pair.
type Resource struct {
	// Name is the slash-delimited resource name relative to its entry root,
	// e.g. "com/example/App.class" or "META-INF/services/com.example.Spi".
	Name string

	// Scope is the loader scope the resource is attributed to.
	Scope *Scope
}

// classExcluded lists class files that carry metadata rather than a type
// and are therefore never classified as class resources.
var classExcluded = []string{"module-info" + ClassFileSuffix, "package-info" + ClassFileSuffix}

// IsClass reports whether the resource denotes a compiled type. Descriptor
// files such as module-info.class are not classes.
func (r Resource) IsClass() bool {
	if !strings.HasSuffix(r.Name, ClassFileSuffix) {
		return false
	}

	base := r.Name
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	for _, excluded := range classExcluded {
		if base == excluded {
			return false
		}
	}

	return true
}

// ClassResource is a Resource whose name denotes a compiled type. The
// derived names are pure functions of the resource name.
type ClassResource struct {
	Resource
}

// ClassName returns the dotted binary name, e.g. "com.example.Outer$Inner".
func (c ClassResource) ClassName() string {
	return strings.ReplaceAll(strings.TrimSuffix(c.Name, ClassFileSuffix), "/", ".")
}

// PackageName returns the dotted package prefix, or "" for the default
// package.
func (c ClassResource) PackageName() string {
	className := c.ClassName()
	if i := strings.LastIndexByte(className, '.'); i >= 0 {
		return className[:i]
	}

	return ""
}

// SimpleName returns the unqualified type name. For nested types the
// segment after the last '$' is used, with the numeric prefix of anonymous
// and local classes stripped: "Bar$Foo" yields "Foo", "Bar$1" yields ""
// and "Bar$1Local" yields "Local".
func (c ClassResource) SimpleName() string {
	className := c.ClassName()
	if i := strings.LastIndexByte(className, '$'); i >= 0 {
		return strings.TrimLeft(className[i+1:], "0123456789")
	}

	if i := strings.LastIndexByte(className, '.'); i >= 0 {
		return className[i+1:]
	}

	return className
}

// IsTopLevel reports whether the class is declared at the top level of its
// compilation unit (no '$' in its name).
func (c ClassResource) IsTopLevel() bool {
	return !strings.ContainsRune(c.Name, '$')
}
