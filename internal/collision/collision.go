// Package collision finds available destination paths by numeric suffixing.
package collision

import (
	"path/filepath"
	"strconv"
	"strings"

	"filedrop/internal/fsys"
)

// Resolve returns the first path that does not exist on the filesystem,
// starting from candidate. If candidate is free it is returned unchanged.
// Otherwise the suffix _1, _2, ... is inserted before the extension until
// a free path is found:
//
//   - "photo.jpg" -> "photo_1.jpg" (if photo.jpg exists)
//   - "notes" -> "notes_1" (no extension, no trailing dot)
//
// Existing numeric suffixes are never parsed or collapsed: a candidate of
// "photo_1.jpg" that collides resolves to "photo_1_1.jpg", not
// "photo_2.jpg". The counter always starts fresh at 1.
//
// The result is only guaranteed free at the moment of return. No lock
// spans the check and any subsequent move, so a concurrent writer can
// claim the path in between.
func Resolve(fs fsys.FS, candidate string) string {
	if !fs.Exists(candidate) {
		return candidate
	}

	dir := filepath.Dir(candidate)
	base := filepath.Base(candidate)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 1; ; n++ {
		next := filepath.Join(dir, stem+"_"+strconv.Itoa(n)+ext)
		if !fs.Exists(next) {
			return next
		}
	}
}
