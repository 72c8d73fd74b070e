package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_BrokenManifest(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		namespace "pkg" {
			entry "x" {
		// Missing closing braces
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := run(out, logs, []string{filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load manifests")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := run(out, logs, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := run(out, logs, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ValidatesCoreModulesAgainstManifest(t *testing.T) {
	t.Parallel()

	manifest := `
namespace "codecs.encode" {
  entry "json" {}
  entry "csv" {}
}
namespace "codecs.decode" {
  entry "json" {}
  entry "csv" {}
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "codecs.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(manifest), 0600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := run(out, logs, []string{filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "codecs.encode")
	require.Contains(t, out.String(), "json")
}
