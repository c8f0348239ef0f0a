// Package domain implements the classpath scanning engine: reference
// resolution, manifest expansion, hierarchy flattening, recursive scanning
// and resource classification.
package domain

import (
	"path"
	"strings"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// fileScheme is the only absolute-location scheme a companion reference may
// carry; anything else is unresolvable and the token is dropped.
const fileScheme = "file"

// ResolveEntry resolves a possibly-relative reference string against a base
// directory into a canonical Entry. Resolution is purely textual, no I/O:
// existence is the scanner's concern. The second return is false when the
// reference carries an unsupported scheme and must be skipped.
func ResolveEntry(baseDir, reference string) (m.Entry, bool) {
	scheme, rest, found := splitScheme(reference)
	if found {
		if !strings.EqualFold(scheme, fileScheme) {
			return "", false
		}

		// file:/abs/path is absolute; file:rel/path resolves against the
		// base directory like a bare relative token. No percent-decoding:
		// spaces and characters like '^' are preserved literally.
		rest = strings.TrimPrefix(rest, "//")
		if strings.HasPrefix(rest, "/") {
			return m.NewEntry(rest), true
		}

		reference = rest
	}

	if path.IsAbs(reference) {
		return m.NewEntry(reference), true
	}

	return m.NewEntry(path.Join(baseDir, reference)), true
}

// splitScheme splits "scheme:rest" when the prefix before the first colon
// is a plausible URI scheme: an ASCII letter followed by letters, digits,
// '+', '-' or '.'. A single-letter prefix is not treated as a scheme so
// Windows drive paths stay plain paths.
func splitScheme(reference string) (scheme, rest string, found bool) {
	colon := strings.IndexByte(reference, ':')
	if colon < 2 {
		return "", reference, false
	}

	candidate := reference[:colon]
	if !isSchemeByte(candidate[0], true) {
		return "", reference, false
	}

	for i := 1; i < len(candidate); i++ {
		if !isSchemeByte(candidate[i], false) {
			return "", reference, false
		}
	}

	return candidate, reference[colon+1:], true
}

func isSchemeByte(b byte, first bool) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case first:
		return false
	case b >= '0' && b <= '9', b == '+', b == '-', b == '.':
		return true
	}

	return false
}
