// Package service enumerates the service folders of a specification registry.
package service

import (
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
	"specprep/internal/fsops"
	"specprep/internal/manifest"
)

// Service is a folder of specification files
type Service struct {
	Name        string
	Path        string
	Files       []string // specification files matching the copy pattern
	HasManifest bool
	Title       string // info.title of the first specification that has one
	APIVersion  string // info.version from the same document
}

// openAPIInfo is the subset of an OpenAPI document read for listings
type openAPIInfo struct {
	Info struct {
		Title   string `yaml:"title"`
		Version string `yaml:"version"`
	} `yaml:"info"`
}

// List scans servicesDir for service folders, sorted by name. Hidden
// directories are skipped.
func List(servicesDir, pattern string) ([]Service, error) {
	entries, err := os.ReadDir(servicesDir)
	if err != nil {
		return nil, err
	}

	var services []Service
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}

		dir := filepath.Join(servicesDir, entry.Name())
		files, err := fsops.MatchFiles(dir, pattern)
		if err != nil {
			return nil, err
		}

		svc := Service{
			Name:  entry.Name(),
			Path:  dir,
			Files: files,
		}
		if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err == nil {
			svc.HasManifest = true
		}
		svc.Title, svc.APIVersion = summarize(dir, files)

		services = append(services, svc)
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

// summarize returns the info block of the first file that parses and has a
// title. Unparseable files are ignored.
func summarize(dir string, files []string) (title, version string) {
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}

		var doc openAPIInfo
		if err := yaml.Unmarshal(data, &doc); err != nil {
			continue
		}
		if doc.Info.Title != "" {
			return doc.Info.Title, doc.Info.Version
		}
	}
	return "", ""
}
