package manifest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/cataloggo/internal/catalog"
	"github.com/vk/cataloggo/internal/ctxlog"
)

// Validate performs a strict parity check between the manifests and a live
// store. Every declared entry must be registered, and every entry registered
// under a declared namespace must be declared. Namespaces no manifest
// mentions are left alone, so manifests may cover a subset of the store.
// All mismatches are reported together.
func Validate(ctx context.Context, model *Model, store *catalog.Store) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, d := range model.Declarations {
		_, err := store.Create(d.Namespace...).Get(d.Name)
		var notFound *catalog.NotFoundError
		switch {
		case err == nil:
			// declared and registered
		case errors.As(err, &notFound):
			errs = append(errs, fmt.Sprintf("entry %q is declared in %s but nothing is registered there", d.Path(), d.Source))
		default:
			errs = append(errs, fmt.Sprintf("entry %q: %v", d.Path(), err))
		}
	}

	for _, namespace := range model.Namespaces() {
		for _, entry := range store.Create(namespace...).GetAll() {
			if !model.Declared(namespace, entry.Name) {
				path := strings.Join(append(namespace, entry.Name), ".")
				errs = append(errs, fmt.Sprintf("entry %q is registered but not declared in any manifest", path))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Manifest validation passed.", "declarations", len(model.Declarations))
	return nil
}
