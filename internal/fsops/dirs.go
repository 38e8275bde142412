package fsops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrInvalidPathKind is returned when a path that must be absolute is not
	ErrInvalidPathKind = errors.New("path is not absolute")
	// ErrNotADirectory is returned when a non-directory occupies a required directory path
	ErrNotADirectory = errors.New("not a directory")
	// ErrPermissionDenied is returned when a directory is not readable and writable
	ErrPermissionDenied = errors.New("permission denied")
)

// RequireAbsolute fails with ErrInvalidPathKind unless path is absolute
func RequireAbsolute(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %s", ErrInvalidPathKind, path)
	}
	return nil
}

// EnsureDir makes sure path exists as a read/write accessible directory.
// Only the last path element is created; the parent must already exist.
// Calling it again on a satisfied path is a no-op.
func EnsureDir(path string) error {
	if err := RequireAbsolute(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotADirectory, path)
		}
	case os.IsNotExist(err):
		if err := os.Mkdir(path, 0755); err != nil {
			// Lost a race with another creator; accept it if it is a directory.
			if !os.IsExist(err) {
				return fmt.Errorf("failed to create directory %s: %w", path, err)
			}
			return EnsureDir(path)
		}
	default:
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return CheckAccess(path)
}

// CheckAccess verifies that dir can be listed and written to
func CheckAccess(dir string) error {
	if _, err := os.ReadDir(dir); err != nil {
		return fmt.Errorf("%w: cannot read %s: %v", ErrPermissionDenied, dir, err)
	}

	probe, err := os.CreateTemp(dir, ".specprep-access-*")
	if err != nil {
		return fmt.Errorf("%w: cannot write %s: %v", ErrPermissionDenied, dir, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return nil
}

// IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
