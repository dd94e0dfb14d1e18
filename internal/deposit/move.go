package deposit

import (
	"fmt"
	"os"
)

// DepositErrorType represents the type of deposit validation error.
type DepositErrorType string

const (
	// InvalidArgument indicates a missing or empty required argument,
	// or a source path that does not exist.
	InvalidArgument DepositErrorType = "INVALID_ARGUMENT"
)

// DepositError represents a request that failed validation.
type DepositError struct {
	Type    DepositErrorType
	Message string
}

func (e *DepositError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// MoveErrorType represents the type of move error.
type MoveErrorType string

const (
	// SourceNotFound indicates the source file vanished before the move.
	SourceNotFound MoveErrorType = "SOURCE_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied MoveErrorType = "PERMISSION_DENIED"
	// CopyFailed indicates the copy+delete fallback failed.
	CopyFailed MoveErrorType = "COPY_FAILED"
)

// MoveError represents an error that occurred during the file move.
type MoveError struct {
	Type MoveErrorType
	Path string
	Err  error
}

func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// move renames src to dst, falling back to copy+delete when rename
// fails (e.g. a cross-device move). The move is the sole filesystem
// mutation of a deposit: the destination directory was created at
// registration time, not here.
func (s *Service) move(src, dst string) error {
	err := s.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if os.IsPermission(err) {
		return &MoveError{Type: PermissionDenied, Path: src, Err: err}
	}
	return s.copyAndDelete(src, dst)
}

// copyAndDelete copies a file to a new location and deletes the
// original. Whole-file reads keep it simple; large-file streaming is
// out of scope.
func (s *Service) copyAndDelete(src, dst string) error {
	data, err := s.fs.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return &MoveError{Type: SourceNotFound, Path: src, Err: err}
		}
		if os.IsPermission(err) {
			return &MoveError{Type: PermissionDenied, Path: src, Err: err}
		}
		return &MoveError{Type: CopyFailed, Path: src, Err: err}
	}

	srcInfo, err := s.fs.Stat(src)
	if err != nil {
		return &MoveError{Type: CopyFailed, Path: src, Err: err}
	}

	if err := s.fs.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		if os.IsPermission(err) {
			return &MoveError{Type: PermissionDenied, Path: dst, Err: err}
		}
		return &MoveError{Type: CopyFailed, Path: dst, Err: err}
	}

	if err := s.fs.Remove(src); err != nil {
		// Avoid leaving two copies behind.
		s.fs.Remove(dst)
		if os.IsPermission(err) {
			return &MoveError{Type: PermissionDenied, Path: src, Err: err}
		}
		return &MoveError{Type: CopyFailed, Path: src, Err: err}
	}

	return nil
}
