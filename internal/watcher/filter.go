// Package watcher monitors a drop directory for files to deposit.
package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns the default patterns for temporary files to ignore.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.part",
		"*.download",
		"*.crdownload", // Chrome partial downloads
		"*.partial",    // Generic partial file
		".~*",          // Hidden temp files (e.g., .~lock)
	}
}

// FileFilter handles filtering of files based on ignore patterns.
type FileFilter struct {
	patterns []string
}

// NewFileFilter creates a new FileFilter with the given patterns.
// If patterns is nil or empty, default patterns are used.
func NewFileFilter(patterns []string) *FileFilter {
	if len(patterns) == 0 {
		patterns = DefaultIgnorePatterns()
	}
	return &FileFilter{
		patterns: patterns,
	}
}

// ShouldIgnore checks if a file path matches any of the ignore patterns.
// It matches against the filename (base name) only.
// Patterns support glob syntax:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [abc] matches any character in the set
//   - [a-z] matches any character in the range
func (f *FileFilter) ShouldIgnore(path string) bool {
	filename := filepath.Base(path)

	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, filename); err == nil && matched {
			return true
		}

		// Extension-only patterns like ".tmp" match as a suffix.
		if strings.HasPrefix(pattern, ".") && !strings.Contains(pattern, "*") {
			if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(pattern)) {
				return true
			}
		}
	}

	return false
}
