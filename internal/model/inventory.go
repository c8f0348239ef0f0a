package model

import (
	"sort"
	"strings"
)

// Inventory is the immutable result set of one classpath scan: every
// resource discovered, each attributed to exactly one owning scope.
type Inventory struct {
	resources []Resource
}

// NewInventory builds an inventory from the collected resources. The input
// is sorted by (name, scope name) so output ordering is deterministic
// regardless of enumeration order during the scan.
func NewInventory(resources []Resource) *Inventory {
	sorted := make([]Resource, len(resources))
	copy(sorted, resources)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}

		return sorted[i].Scope.String() < sorted[j].Scope.String()
	})

	return &Inventory{resources: sorted}
}

// Resources returns all discovered resources. The returned slice is shared;
// callers must not modify it.
func (inv *Inventory) Resources() []Resource {
	return inv.resources
}

// Len returns the number of discovered resources.
func (inv *Inventory) Len() int {
	return len(inv.resources)
}

// Classes returns every class resource in the inventory.
func (inv *Inventory) Classes() []ClassResource {
	var classes []ClassResource

	for _, resource := range inv.resources {
		if resource.IsClass() {
			classes = append(classes, ClassResource{Resource: resource})
		}
	}

	return classes
}

// TopLevelClasses returns the class resources declared at the top level of
// their compilation units.
func (inv *Inventory) TopLevelClasses() []ClassResource {
	var classes []ClassResource

	for _, class := range inv.Classes() {
		if class.IsTopLevel() {
			classes = append(classes, class)
		}
	}

	return classes
}

// ClassesInPackage returns the top-level classes whose package equals pkg
// exactly.
func (inv *Inventory) ClassesInPackage(pkg string) []ClassResource {
	var classes []ClassResource

	for _, class := range inv.TopLevelClasses() {
		if class.PackageName() == pkg {
			classes = append(classes, class)
		}
	}

	return classes
}

// TopLevelClassesRecursive returns the top-level classes whose package is
// pkg or any package below it.
func (inv *Inventory) TopLevelClassesRecursive(pkg string) []ClassResource {
	prefix := pkg + "."

	var classes []ClassResource

	for _, class := range inv.TopLevelClasses() {
		name := class.PackageName()
		if name == pkg || strings.HasPrefix(name, prefix) {
			classes = append(classes, class)
		}
	}

	return classes
}
