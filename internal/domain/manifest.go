package domain

import (
	"log/slog"
	"strings"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// ManifestEntries extracts the companion references declared by an
// archive's manifest Class-Path attribute, resolved against the archive's
// parent directory. Order is preserved and duplicates are kept; the
// scanner's visited set deduplicates later. Unresolvable tokens are
// dropped, never fatal.
func ManifestEntries(declaring m.Entry, manifest *m.Manifest) []m.Entry {
	raw := manifest.ClassPath()
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	baseDir := declaring.Dir()

	var entries []m.Entry

	for _, token := range strings.Fields(raw) {
		entry, ok := ResolveEntry(baseDir, token)
		if !ok {
			slog.Debug("dropping unresolvable manifest reference",
				"archive", declaring, "token", token)
			continue
		}

		entries = append(entries, entry)
	}

	return entries
}
