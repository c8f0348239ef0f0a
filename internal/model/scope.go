package model

// Scope is a node in the loader hierarchy. The parent relation and the
// declared entries live behind the hierarchy adapter, not here: a Scope is
// an opaque identity that resources are attributed to. Scopes are compared
// by pointer, mirroring the host runtime's loader object identity.
type Scope struct {
	Name string
}

// NewScope creates a scope with the given display name.
func NewScope(name string) *Scope {
	return &Scope{Name: name}
}

func (s *Scope) String() string {
	if s == nil {
		return "<nil scope>"
	}

	return s.Name
}

// EntryOwnership is the ordered mapping from Entry to the Scope that owns
// it, produced by flattening a loader hierarchy. Insertion is
// first-write-wins; iteration follows insertion order. It is built once and
// read-only afterwards.
type EntryOwnership struct {
	order  []Entry
	owners map[Entry]*Scope
}

// NewEntryOwnership creates an empty ownership map.
func NewEntryOwnership() *EntryOwnership {
	return &EntryOwnership{owners: make(map[Entry]*Scope)}
}

// Insert records scope as the owner of entry unless the entry is already
// claimed. Returns true if the entry was inserted.
func (o *EntryOwnership) Insert(entry Entry, scope *Scope) bool {
	if _, claimed := o.owners[entry]; claimed {
		return false
	}

	o.order = append(o.order, entry)
	o.owners[entry] = scope

	return true
}

// Owner returns the owning scope for entry, or nil if the entry is unknown.
func (o *EntryOwnership) Owner(entry Entry) *Scope {
	return o.owners[entry]
}

// Entries returns the entries in insertion order. The returned slice is
// shared; callers must not modify it.
func (o *EntryOwnership) Entries() []Entry {
	return o.order
}

// Len returns the number of owned entries.
func (o *EntryOwnership) Len() int {
	return len(o.order)
}
