// Package deposit orchestrates file deposits into aliased folders.
package deposit

import (
	"path/filepath"
	"strings"

	"filedrop/internal/collision"
	"filedrop/internal/fsys"
	"filedrop/internal/registry"
	"filedrop/internal/sanitizer"
)

// Options configures a Service at construction time.
type Options struct {
	// Folders maps aliases to directory paths, registered eagerly
	// (directories are created if missing).
	Folders map[string]string
	// SafeNames enables filename sanitization: the destination stem is
	// rewritten by the sanitizer before the move. The extension is
	// never touched.
	SafeNames bool
}

// Result describes a completed deposit.
type Result struct {
	Filename string // final basename at the destination
	Path     string // final destination path
}

// Service deposits files into registered folders. Put replaces any
// existing file at the destination; Add renames with a numeric suffix
// to avoid overwriting.
type Service struct {
	fs        fsys.FS
	folders   *registry.Registry
	safeNames bool
}

// New creates a Service and eagerly registers every folder in
// opts.Folders, creating missing directories. It fails if any
// registration fails.
func New(fs fsys.FS, opts Options) (*Service, error) {
	s := &Service{
		fs:        fs,
		folders:   registry.New(fs),
		safeNames: opts.SafeNames,
	}
	for alias, dir := range opts.Folders {
		if err := s.folders.Register(alias, dir); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddFolder registers a folder alias, creating the directory if needed.
// Re-registering an alias overwrites the previous mapping.
func (s *Service) AddFolder(alias, dir string) error {
	return s.folders.Register(alias, dir)
}

// Put moves the source file into the aliased folder, replacing any
// existing file at the destination. An empty destName derives the
// destination name from the source basename. Returns the final
// basename and path.
func (s *Service) Put(alias, sourcePath, destName string) (*Result, error) {
	dir, name, err := s.resolveTarget(alias, sourcePath, destName)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(dir, name)
	if err := s.move(sourcePath, target); err != nil {
		return nil, err
	}
	return &Result{Filename: name, Path: target}, nil
}

// Add moves the source file into the aliased folder without overwriting:
// if the destination name is taken, a numeric suffix is inserted before
// the extension ("photo.jpg" becomes "photo_1.jpg", then "photo_2.jpg",
// and so on). The collision check and the move are not atomic; a
// concurrent writer can claim the chosen path between the two. This is
// an accepted limitation.
func (s *Service) Add(alias, sourcePath, destName string) (*Result, error) {
	dir, name, err := s.resolveTarget(alias, sourcePath, destName)
	if err != nil {
		return nil, err
	}

	target := collision.Resolve(s.fs, filepath.Join(dir, name))
	if err := s.move(sourcePath, target); err != nil {
		return nil, err
	}
	return &Result{Filename: filepath.Base(target), Path: target}, nil
}

// resolveTarget validates the request and computes the destination
// directory and basename, applying sanitization when enabled.
func (s *Service) resolveTarget(alias, sourcePath, destName string) (string, string, error) {
	if alias == "" {
		return "", "", &DepositError{Type: InvalidArgument, Message: "folder alias must be a non-empty string"}
	}
	if sourcePath == "" {
		return "", "", &DepositError{Type: InvalidArgument, Message: "source path must be a non-empty string"}
	}
	if !s.fs.Exists(sourcePath) {
		return "", "", &DepositError{Type: InvalidArgument, Message: "source file does not exist: " + sourcePath}
	}

	dir, err := s.folders.Resolve(alias)
	if err != nil {
		return "", "", err
	}

	name := destName
	if name == "" {
		name = filepath.Base(sourcePath)
	}
	if s.safeNames {
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		name = sanitizer.Sanitize(stem) + ext
	}
	return dir, name, nil
}
