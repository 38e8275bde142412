// Package readme renders the README shipped with a prepared service.
package readme

import (
	"fmt"
	"strings"

	"specprep/internal/manifest"
)

// FileName is the name of the generated README in the target directory
const FileName = "README.md"

const readmeTemplate = "# %[1]s\n" +
	"\n" +
	"OpenAPI specification for the %[2]s service, packaged for unmock.\n" +
	"\n" +
	"## Install\n" +
	"\n" +
	"```bash\n" +
	"npm install %[1]s\n" +
	"```\n" +
	"\n" +
	"## Details\n" +
	"\n" +
	"The specification files are maintained in [%[3]s](%[4]s).\n"

// Generate returns the README for service
func Generate(service string, d manifest.Defaults) string {
	repo := strings.TrimSuffix(d.RepositoryURL, ".git")
	return fmt.Sprintf(readmeTemplate,
		d.PackageName(service),
		service,
		strings.TrimPrefix(repo, "https://"),
		repo+"/tree/master/services/"+service,
	)
}
