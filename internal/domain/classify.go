package domain

import (
	m "classwalk.dev/pkg/classwalk/internal/model"
)

// Classify builds the resource record for a discovered name under its
// owning scope. Classification is a pure function of the name string:
// classifying the same name twice yields equal records.
func Classify(name string, scope *m.Scope) m.Resource {
	return m.Resource{Name: name, Scope: scope}
}

// ClassOf returns the class view of a resource when its name denotes a
// compiled type. Descriptor files (module-info.class, package-info.class)
// and plain resources report false.
func ClassOf(resource m.Resource) (m.ClassResource, bool) {
	if !resource.IsClass() {
		return m.ClassResource{}, false
	}

	return m.ClassResource{Resource: resource}, true
}
