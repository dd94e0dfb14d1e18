// Package sanitizer rewrites filename stems into filesystem-safe form.
package sanitizer

import "strings"

// Sanitize maps an arbitrary filename stem to one containing only
// characters safe across common filesystems. ASCII letters, digits,
// hyphens, underscores and interior dots pass through; every other
// rune, including path separators, becomes an underscore. Trailing
// dots and spaces are trimmed because Windows rejects them.
//
// Sanitize is total and idempotent: it never fails, and applying it
// twice yields the same result as applying it once. The caller is
// expected to split the extension off first; Sanitize operates on the
// stem only.
func Sanitize(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))
	for _, r := range stem {
		if isSafe(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return strings.TrimRight(b.String(), ". ")
}

// isSafe reports whether a rune may appear in a sanitized stem.
func isSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}
