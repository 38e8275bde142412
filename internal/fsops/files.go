package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchFiles returns the names of regular files directly inside dir whose
// name matches the glob pattern, sorted. An empty pattern matches every file.
func MatchFiles(dir, pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		// Stat follows symlinks so a link to a directory is skipped too.
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if pattern != "" {
			ok, err := doublestar.Match(pattern, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// CopyFile copies src to dst byte-for-byte, overwriting dst
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, info.Mode().Perm())
}

// WriteFile writes data to path, overwriting any existing file
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
