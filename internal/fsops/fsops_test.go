package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, EnsureDir(dir))
	assert.True(t, IsDir(dir))
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	require.NoError(t, EnsureDir(dir), "second call must succeed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "existing content is untouched and no probe file is left")
	assert.Equal(t, "keep.txt", entries[0].Name())
}

func TestEnsureDir_RejectsRelativePath(t *testing.T) {
	err := EnsureDir("relative/dir")
	assert.ErrorIs(t, err, ErrInvalidPathKind)
}

func TestEnsureDir_RegularFileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := EnsureDir(path)
	assert.ErrorIs(t, err, ErrNotADirectory)
	assert.Contains(t, err.Error(), path)
}

func TestEnsureDir_NonRecursive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nested")

	err := EnsureDir(path)
	require.Error(t, err)
	assert.False(t, IsDir(path))
}

func TestEnsureDir_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err := EnsureDir(dir)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestMatchFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yml", "a.yaml", "notes.txt", "openapi.yaml.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "yaml extensions", pattern: "*.{yml,yaml}", want: []string{"a.yaml", "b.yml"}},
		{name: "single extension", pattern: "*.txt", want: []string{"notes.txt"}},
		{name: "empty pattern matches all files", pattern: "", want: []string{"a.yaml", "b.yml", "notes.txt", "openapi.yaml.bak"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchFiles(dir, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchFiles_SkipsLinksToDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.yaml"), []byte("openapi: 3.0.0\n"), 0o644))
	sub := t.TempDir()
	if err := os.Symlink(sub, filepath.Join(dir, "linked.yaml")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "openapi.yaml"), filepath.Join(dir, "alias.yaml")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := MatchFiles(dir, "*.{yml,yaml}")
	require.NoError(t, err)
	assert.Equal(t, []string{"alias.yaml", "openapi.yaml"}, got)
}

func TestMatchFiles_InvalidPattern(t *testing.T) {
	_, err := MatchFiles(t.TempDir(), "[")
	assert.Error(t, err)
}

func TestCopyFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.yaml")
	dst := filepath.Join(dir, "dst.yaml")
	require.NoError(t, os.WriteFile(src, []byte("openapi: 3.0.0\n"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("stale"), 0o644))

	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.0\n", string(data))
}
