// Package fsys defines the filesystem collaborator used by the deposit workflow.
package fsys

import "os"

// FS is the filesystem surface the deposit workflow depends on.
// The OS implementation is used in production; tests may wrap it to
// inject failures (e.g. forcing Rename to fail to exercise fallbacks).
type FS interface {
	// Exists reports whether a filesystem entry exists at the given path.
	Exists(path string) bool
	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error
	// Rename moves a file from oldPath to newPath, replacing any
	// existing entry at newPath where the OS allows it.
	Rename(oldPath, newPath string) error
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile writes data to path with the given mode, creating or truncating it.
	WriteFile(path string, data []byte, mode os.FileMode) error
	// Remove deletes the file at path.
	Remove(path string) error
	// Stat returns file info for path.
	Stat(path string) (os.FileInfo, error)
}

// OS is the production FS backed by the os package.
type OS struct{}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (OS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OS) WriteFile(path string, data []byte, mode os.FileMode) error {
	return os.WriteFile(path, data, mode)
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}

func (OS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
