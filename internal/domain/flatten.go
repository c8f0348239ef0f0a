package domain

import (
	"fmt"

	"classwalk.dev/pkg/classwalk/internal/adapter"
	m "classwalk.dev/pkg/classwalk/internal/model"
)

// Flatten walks the loader hierarchy from its root-most ancestor down to
// scope and collects every declared entry into an ordered ownership map.
// Ancestors are processed first and insertion is first-write-wins, so an
// entry declared by both an ancestor and a descendant belongs to the
// ancestor. Entries are canonicalized before insertion so aliased
// spellings (relative vs absolute, symlinks) collapse to one owned entry.
// A scope that fails to enumerate its entries aborts the whole flatten:
// that indicates a broken hierarchy, not a stale path.
func Flatten(hierarchy adapter.ScopeHierarchyAdapter, scope *m.Scope) (*m.EntryOwnership, error) {
	var chain []*m.Scope
	for current := scope; current != nil; current = hierarchy.ParentOf(current) {
		chain = append(chain, current)
	}

	ownership := m.NewEntryOwnership()

	for i := len(chain) - 1; i >= 0; i-- {
		entries, err := hierarchy.DeclaredEntries(chain[i])
		if err != nil {
			return nil, fmt.Errorf("list entries of scope %s: %w", chain[i], err)
		}

		for _, entry := range entries {
			ownership.Insert(entry.Canonical(), chain[i])
		}
	}

	return ownership, nil
}
