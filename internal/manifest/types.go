package manifest

import "strings"

// Manifest is a package descriptor. Values are JSON-compatible.
type Manifest map[string]any

// Defaults holds the registry-wide values that managed fields are derived from
type Defaults struct {
	Namespace     string
	RepositoryURL string
	Licence       string
}

// PackageName returns the scoped package name for a service. The namespace
// may be given with or without its leading "@".
func (d Defaults) PackageName(service string) string {
	return "@" + strings.TrimPrefix(d.Namespace, "@") + "/" + service
}

// GitURL returns the repository URL in the form used by package.json
func (d Defaults) GitURL() string {
	return strings.TrimSuffix(d.RepositoryURL, ".git") + ".git"
}
