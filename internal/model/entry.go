// Package model defines the data structures for classpath scanning.
package model

import (
	"path"
	"path/filepath"
	"strings"
)

// Entry is the canonical identifier of one physical search-path location,
// either a directory or an archive file. Identity is the canonical
// slash-separated absolute-or-cleaned form: two entries are equal iff their
// canonical strings match.
type Entry string

// NewEntry canonicalizes a raw path into an Entry. Platform separators are
// normalized to '/' and '.'/'..' segments are resolved.
func NewEntry(raw string) Entry {
	return Entry(path.Clean(filepath.ToSlash(raw)))
}

// Dir returns the parent directory of the entry, used as the base for
// resolving manifest companion references declared by an archive.
func (e Entry) Dir() string {
	return path.Dir(string(e))
}

// Base returns the last path segment of the entry.
func (e Entry) Base() string {
	return path.Base(string(e))
}

// FSPath returns the entry in the platform's separator convention for
// handing to filesystem calls.
func (e Entry) FSPath() string {
	return filepath.FromSlash(string(e))
}

// Canonical resolves the entry to its canonical absolute form: relative
// paths are absolutized against the working directory and symlinks are
// resolved when the target exists. Aliased spellings of one physical
// location canonicalize to the same Entry, which is what the ownership
// and visited-set dedup key on.
func (e Entry) Canonical() Entry {
	abs, err := filepath.Abs(e.FSPath())
	if err != nil {
		return e
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	return NewEntry(abs)
}

// archiveSuffixes lists the file extensions treated as scannable archives.
var archiveSuffixes = []string{".jar", ".zip"}

// HasArchiveSuffix reports whether the entry's name looks like an archive.
// Whether it actually opens as one is decided by the archive adapter.
func (e Entry) HasArchiveSuffix() bool {
	name := strings.ToLower(e.Base())
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}
