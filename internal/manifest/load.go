package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cataloggo/internal/ctxlog"
	"github.com/vk/cataloggo/internal/fsutil"
)

// entryBlock is the HCL shape of a single `entry` block.
type entryBlock struct {
	Name        string     `hcl:"name,label"`
	Description string     `hcl:"description,optional"`
	Meta        *cty.Value `hcl:"meta,optional"`
}

// namespaceBlock is the HCL shape of a `namespace` block. The label is the
// dotted namespace path; segments therefore cannot contain dots, which keeps
// the dotted rendering unambiguous for declared keys.
type namespaceBlock struct {
	Path    string        `hcl:"path,label"`
	Entries []*entryBlock `hcl:"entry,block"`
}

// fileRoot decodes the top-level blocks of one manifest file.
type fileRoot struct {
	Namespaces []*namespaceBlock `hcl:"namespace,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

// Load reads every .hcl manifest under the given paths (files or
// directories) and merges them into one Model. Declaring the same full key
// twice, in one file or across files, is an error.
func Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	model := newModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}
		if err := merge(model, hclFile.Body, file); err != nil {
			return nil, err
		}
		logger.Debug("Loaded manifest file.", "file", file)
	}

	logger.Info("Manifests loaded.", "files", len(files), "declarations", len(model.Declarations))
	return model, nil
}

// Decode parses a single manifest from memory. Tests and embedded manifests
// use this instead of Load; filename only labels diagnostics.
func Decode(ctx context.Context, filename string, src []byte) (*Model, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	model := newModel()
	if err := merge(model, hclFile.Body, filename); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Decoded manifest source.", "file", filename, "declarations", len(model.Declarations))
	return model, nil
}

// merge decodes one manifest body into the model.
func merge(model *Model, body hcl.Body, filename string) error {
	var root fileRoot
	diags := gohcl.DecodeBody(body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	for _, ns := range root.Namespaces {
		segments, err := splitPath(ns.Path)
		if err != nil {
			return fmt.Errorf("manifest %s: %w", filename, err)
		}
		for _, e := range ns.Entries {
			if e.Name == "" {
				return fmt.Errorf("manifest %s: namespace %q declares an entry with an empty name", filename, ns.Path)
			}
			d := &Declaration{
				Namespace:   segments,
				Name:        e.Name,
				Description: e.Description,
				Meta:        e.Meta,
				Source:      filename,
			}
			if prev, ok := model.add(d); !ok {
				return fmt.Errorf("manifest %s: entry %q already declared in %s", filename, d.Path(), prev.Source)
			}
		}
	}
	return nil
}

// splitPath turns a dotted namespace label into segments. Manifests are
// stricter than the store itself: empty segments are rejected here because a
// human-authored label with a leading, trailing, or doubled dot is always a
// typo.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("namespace label must not be empty")
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("namespace label %q contains an empty segment", path)
		}
	}
	return segments, nil
}
