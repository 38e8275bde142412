package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	// FileName is the manifest file read from a service and written to its prepared copy
	FileName = "package.json"
	// DefaultVersion is used when no existing manifest carries a version
	DefaultVersion = "1.0.0"
)

// ErrMalformedManifest is returned when package.json exists but is not a JSON object
var ErrMalformedManifest = errors.New("malformed manifest")

//go:embed schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("https://specprep/manifest.schema.json", schemaSource)

// Read loads package.json from sourceDir. The boolean is false when the file
// does not exist.
func Read(sourceDir string) (Manifest, bool, error) {
	path := filepath.Join(sourceDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrMalformedManifest, path, err)
	}
	if m == nil {
		return nil, false, fmt.Errorf("%w: %s: not a JSON object", ErrMalformedManifest, path)
	}

	return m, true, nil
}

// Merge computes the manifest to write for service. Managed fields always
// take the computed values, except that an existing version is preserved.
// Other fields of existing pass through. existing may be nil and is never
// modified.
func Merge(service string, existing Manifest, d Defaults) Manifest {
	var version any = DefaultVersion
	if v, ok := existing["version"]; ok {
		version = v
	}

	override := Manifest{
		"name":        d.PackageName(service),
		"description": "Service specification for " + service,
		"main":        "",
		"licence":     d.Licence,
		"private":     false,
		"repository": map[string]any{
			"type":      "git",
			"url":       d.GitURL(),
			"directory": "services/" + service,
		},
		"version": version,
	}

	if existing == nil {
		return override
	}

	merged := make(Manifest, len(existing)+len(override))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// Encode renders m as JSON with two-space indentation and a trailing newline
func Encode(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks the managed fields of m against the manifest schema
func Validate(m Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	return nil
}
