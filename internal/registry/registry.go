// Package registry maintains the mapping from folder aliases to directories.
package registry

import (
	"fmt"

	"filedrop/internal/fsys"
)

// RegistryErrorType represents the type of registry error.
type RegistryErrorType string

const (
	// UnknownFolder indicates the alias has not been registered.
	UnknownFolder RegistryErrorType = "UNKNOWN_FOLDER"
	// InvalidPath indicates the directory path is empty or unusable.
	InvalidPath RegistryErrorType = "INVALID_PATH"
)

// RegistryError represents an error from an alias lookup or registration.
type RegistryError struct {
	Type  RegistryErrorType
	Alias string
	Err   error
}

func (e *RegistryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Alias, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Alias)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// Registry maps folder aliases to absolute directory paths. It is owned
// by a single service instance; it is not a process-wide singleton.
// Concurrent re-registration of the same alias is last-write-wins.
type Registry struct {
	fs      fsys.FS
	folders map[string]string
}

// New creates an empty Registry backed by the given filesystem.
func New(fs fsys.FS) *Registry {
	return &Registry{
		fs:      fs,
		folders: make(map[string]string),
	}
}

// Register maps an alias to a directory path, creating the directory
// (and any missing parents) if it does not exist. Registering an alias
// twice overwrites the previous mapping. An empty directory path is
// rejected with an InvalidPath error.
func (r *Registry) Register(alias, dir string) error {
	if dir == "" {
		return &RegistryError{Type: InvalidPath, Alias: alias}
	}
	if err := r.fs.MkdirAll(dir); err != nil {
		return &RegistryError{Type: InvalidPath, Alias: alias, Err: err}
	}
	r.folders[alias] = dir
	return nil
}

// Resolve returns the directory registered for the alias, or an
// UnknownFolder error if the alias has never been registered.
func (r *Registry) Resolve(alias string) (string, error) {
	dir, ok := r.folders[alias]
	if !ok {
		return "", &RegistryError{Type: UnknownFolder, Alias: alias}
	}
	return dir, nil
}
