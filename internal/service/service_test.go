package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestList(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "petstore", "openapi.yaml"), "openapi: 3.0.0\ninfo:\n  title: Petstore\n  version: 1.2.0\n")
	writeFile(t, filepath.Join(tmp, "petstore", "package.json"), `{"version": "2.0.0"}`)
	writeFile(t, filepath.Join(tmp, "github", "broken.yml"), "info: [\n")
	writeFile(t, filepath.Join(tmp, "github", "spec.yaml"), "info:\n  title: GitHub\n")
	writeFile(t, filepath.Join(tmp, ".hidden", "openapi.yaml"), "info:\n  title: Hidden\n")
	writeFile(t, filepath.Join(tmp, "README.md"), "not a service")

	services, err := List(tmp, "*.{yml,yaml}")
	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, "github", services[0].Name)
	assert.Equal(t, []string{"broken.yml", "spec.yaml"}, services[0].Files)
	assert.Equal(t, "GitHub", services[0].Title, "unparseable files are skipped")
	assert.False(t, services[0].HasManifest)

	assert.Equal(t, "petstore", services[1].Name)
	assert.Equal(t, "Petstore", services[1].Title)
	assert.Equal(t, "1.2.0", services[1].APIVersion)
	assert.True(t, services[1].HasManifest)
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), "*.yaml")
	assert.Error(t, err)
}
