package model

import "strings"

// ClassPathAttribute is the manifest main-attribute naming companion
// search-path references, whitespace separated.
const ClassPathAttribute = "Class-Path"

// ManifestPath is the well-known location of an archive's manifest.
const ManifestPath = "META-INF/MANIFEST.MF"

// ArchiveItem is one named item inside an archive. Directory markers carry
// no resource and are skipped during scanning.
type ArchiveItem struct {
	Name  string
	IsDir bool
}

// Manifest holds the parsed main attributes of an archive manifest.
// A nil *Manifest means the archive carries no manifest at all.
type Manifest struct {
	Attributes map[string]string
}

// Attr returns the named main attribute, or "" if absent. Lookup is
// case-insensitive per the jar manifest format.
func (m *Manifest) Attr(name string) string {
	if m == nil {
		return ""
	}

	for key, value := range m.Attributes {
		if strings.EqualFold(key, name) {
			return value
		}
	}

	return ""
}

// ClassPath returns the raw Class-Path attribute value, "" if undeclared.
func (m *Manifest) ClassPath() string {
	return m.Attr(ClassPathAttribute)
}
