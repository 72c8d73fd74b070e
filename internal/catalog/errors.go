package catalog

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Get when no value is registered at the
// requested full key. Path is the dotted rendering of the attempted key;
// Available lists the names actually registered directly under the handle's
// namespace, in registration order, and is empty when the namespace holds
// nothing.
type NotFoundError struct {
	Path      string
	Available []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("catalog: no entry registered at %q (namespace is empty)", e.Path)
	}
	return fmt.Sprintf("catalog: no entry registered at %q (available: %s)", e.Path, strings.Join(e.Available, ", "))
}
