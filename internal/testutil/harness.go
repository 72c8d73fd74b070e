package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/cataloggo/internal/app"
	"github.com/vk/cataloggo/internal/catalog"
)

// HarnessResult holds the outcomes of a full app run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp writes the given manifest files (relative path -> HCL content) to a
// temp directory, wires the provided modules into a fresh store, and runs
// the app against those manifests at debug level. Construction errors are
// returned through HarnessResult.Err the same way run errors are.
func RunApp(t *testing.T, files map[string]string, modules ...catalog.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg, err := app.NewConfig(app.Config{
		ManifestPath: tmpDir,
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, err)

	var out, logs SafeBuffer
	result := &HarnessResult{}

	result.App, result.Err = app.New(&out, &logs, cfg, modules...)
	if result.Err == nil {
		result.Err = result.App.Run(context.Background())
	}

	result.Output = out.String()
	result.LogOutput = logs.String()
	return result
}
