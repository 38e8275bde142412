package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"specprep/internal/manifest"
)

var testDefaults = manifest.Defaults{
	Namespace:     "@unmock",
	RepositoryURL: "https://github.com/unmock/unmock-openapi-specs.git",
	Licence:       "MIT",
}

func TestGenerate(t *testing.T) {
	got := Generate("test-service", testDefaults)

	assert.Contains(t, got, "# @unmock/test-service\n")
	assert.Contains(t, got, "npm install @unmock/test-service\n")
	assert.Contains(t, got, "(https://github.com/unmock/unmock-openapi-specs/tree/master/services/test-service)")
	assert.Contains(t, got, "[github.com/unmock/unmock-openapi-specs]")
}

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate("petstore", testDefaults), Generate("petstore", testDefaults))
	assert.NotEqual(t, Generate("petstore", testDefaults), Generate("github", testDefaults))
}
