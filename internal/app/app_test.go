package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cataloggo/internal/testutil"
)

func TestRunListsDeclaredNamespaces(t *testing.T) {
	mod := &testutil.StaticModule{
		Entries: map[string]any{
			"pkg.loaders.csv":  "csv-loader",
			"pkg.loaders.json": "json-loader",
		},
		Order: []string{"pkg.loaders.csv", "pkg.loaders.json"},
	}

	result := testutil.RunApp(t, map[string]string{
		"loaders.hcl": `
namespace "pkg.loaders" {
  entry "csv" {
    description = "reads comma separated values"
  }
  entry "json" {}
}
`,
	}, mod)

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "pkg.loaders")
	assert.Contains(t, result.Output, "csv  reads comma separated values")
	assert.Contains(t, result.Output, "json")
	assert.Contains(t, result.LogOutput, "Manifests loaded")
}

func TestRunFailsOnParityMismatch(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"loaders.hcl": `
namespace "pkg.loaders" {
  entry "csv" {}
}
`,
	}, &testutil.NoopModule{})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `"pkg.loaders.csv"`)
}

func TestNewFailsOnBrokenManifest(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"broken.hcl": `namespace "pkg" {`,
	}, &testutil.NoopModule{})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to load manifests")
}

func TestCoreModulesSatisfyBuiltinManifest(t *testing.T) {
	// No modules passed: the compiled-in core set registers the codecs, and
	// the manifest mirrors them exactly.
	result := testutil.RunApp(t, map[string]string{
		"codecs.hcl": `
namespace "codecs.encode" {
  entry "json" {}
  entry "csv" {}
}
namespace "codecs.decode" {
  entry "json" {}
  entry "csv" {}
}
`,
	})

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "codecs.encode")
	assert.Contains(t, result.Output, "codecs.decode")
	assert.True(t, result.App.Store().CheckExists("codecs"))
}
