package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// ScopeHierarchyAdapter abstracts the loader hierarchy as pure data: a
// parent pointer and an ordered entry list per scope. The flattener depends
// only on this capability, never on how the hierarchy is defined.
type ScopeHierarchyAdapter interface {
	// ParentOf returns the parent scope, or nil for a root scope.
	ParentOf(scope *m.Scope) *m.Scope

	// DeclaredEntries returns the entries the scope declares, in declaration
	// order. An error here indicates a broken hierarchy definition and
	// aborts the whole scan.
	DeclaredEntries(scope *m.Scope) ([]m.Entry, error)
}

// scopeSpec is one scope definition in a hierarchy YAML file.
type scopeSpec struct {
	Name    string   `yaml:"name"`
	Parent  string   `yaml:"parent,omitempty"`
	Entries []string `yaml:"entries"`
}

// hierarchyFile is the on-disk shape of a scopes definition.
type hierarchyFile struct {
	Scopes []scopeSpec `yaml:"scopes"`
}

// StaticScopeHierarchy is a ScopeHierarchyAdapter over a fixed scope tree,
// loaded from a YAML definition or built programmatically.
type StaticScopeHierarchy struct {
	scopes  map[*m.Scope]scopeNode
	byName  map[string]*m.Scope
	ordered []*m.Scope
}

type scopeNode struct {
	parent  *m.Scope
	entries []m.Entry
}

// NewStaticScopeHierarchy constructs an empty hierarchy.
func NewStaticScopeHierarchy() *StaticScopeHierarchy {
	return &StaticScopeHierarchy{
		scopes: make(map[*m.Scope]scopeNode),
		byName: make(map[string]*m.Scope),
	}
}

// LoadScopeHierarchy reads a YAML scope definition file. Parents must be
// declared before the scopes that reference them; entry paths are resolved
// relative to the file's directory.
func LoadScopeHierarchy(path string) (*StaticScopeHierarchy, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scopes file: %w", err)
	}

	var file hierarchyFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse scopes file %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	hierarchy := NewStaticScopeHierarchy()

	for _, spec := range file.Scopes {
		if strings.TrimSpace(spec.Name) == "" {
			return nil, fmt.Errorf("scopes file %s: scope with empty name", path)
		}

		var parent *m.Scope

		if spec.Parent != "" {
			parent = hierarchy.byName[spec.Parent]
			if parent == nil {
				return nil, fmt.Errorf("scopes file %s: scope %q references undeclared parent %q", path, spec.Name, spec.Parent)
			}
		}

		entries := make([]m.Entry, 0, len(spec.Entries))
		for _, raw := range spec.Entries {
			if !filepath.IsAbs(raw) {
				raw = filepath.Join(baseDir, raw)
			}

			entries = append(entries, m.NewEntry(raw))
		}

		if _, err := hierarchy.AddScope(spec.Name, parent, entries); err != nil {
			return nil, fmt.Errorf("scopes file %s: %w", path, err)
		}
	}

	return hierarchy, nil
}

// NewFlatHierarchy builds a single-scope hierarchy from a separator-joined
// entry list, the shape of a CLASSPATH environment value.
func NewFlatHierarchy(name, joined string) *StaticScopeHierarchy {
	hierarchy := NewStaticScopeHierarchy()

	var entries []m.Entry

	for _, raw := range strings.Split(joined, string(os.PathListSeparator)) {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		entries = append(entries, m.NewEntry(raw))
	}

	_, _ = hierarchy.AddScope(name, nil, entries)

	return hierarchy
}

// AddScope registers a scope with the given parent and declared entries.
func (h *StaticScopeHierarchy) AddScope(name string, parent *m.Scope, entries []m.Entry) (*m.Scope, error) {
	if _, exists := h.byName[name]; exists {
		return nil, fmt.Errorf("duplicate scope %q", name)
	}

	scope := m.NewScope(name)
	h.scopes[scope] = scopeNode{parent: parent, entries: entries}
	h.byName[name] = scope
	h.ordered = append(h.ordered, scope)

	return scope, nil
}

// ScopeByName returns the registered scope with the given name, or nil.
func (h *StaticScopeHierarchy) ScopeByName(name string) *m.Scope {
	return h.byName[name]
}

// Leaf returns the most recently declared scope, the conventional scan
// starting point for a definition file.
func (h *StaticScopeHierarchy) Leaf() *m.Scope {
	if len(h.ordered) == 0 {
		return nil
	}

	return h.ordered[len(h.ordered)-1]
}

// ParentOf implements ScopeHierarchyAdapter.
func (h *StaticScopeHierarchy) ParentOf(scope *m.Scope) *m.Scope {
	return h.scopes[scope].parent
}

// DeclaredEntries implements ScopeHierarchyAdapter.
func (h *StaticScopeHierarchy) DeclaredEntries(scope *m.Scope) ([]m.Entry, error) {
	node, known := h.scopes[scope]
	if !known {
		return nil, fmt.Errorf("unknown scope %s", scope)
	}

	return node.entries, nil
}
