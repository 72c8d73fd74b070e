package catalog

import "slices"

// Handle is a lightweight view over a Store, fixed to one namespace prefix.
// It owns no data: every handle created for the same namespace observes the
// same underlying entries, and a registration through one handle is
// immediately visible through all others.
type Handle struct {
	store     *Store
	namespace []string
}

// Entry is one registered value together with its final name segment.
type Entry struct {
	Name  string
	Value any

	seq int
}

// Namespace returns a copy of the namespace this handle is bound to. The
// binding is fixed at creation and never changes.
func (h Handle) Namespace() []string {
	return slices.Clone(h.namespace)
}

// Register stores value under the handle's namespace at the given name.
// Registering an already-taken name replaces the previous value silently.
func (h Handle) Register(name string, value any) {
	h.store.register(h.namespace, name, value)
}

// RegisterFunc returns a function that registers its argument under name and
// hands it back unchanged, so a value can be registered at its definition
// site without losing the direct reference:
//
//	var parseCSV = loaders.RegisterFunc("csv")(func(r io.Reader) ([][]string, error) { ... })
func (h Handle) RegisterFunc(name string) func(v any) any {
	return func(v any) any {
		h.store.register(h.namespace, name, v)
		return v
	}
}

// Get returns the value registered under the handle's namespace at name.
// The value is returned as registered, not copied. A missing key yields a
// *NotFoundError; this is the only catalog operation that can fail.
func (h Handle) Get(name string) (any, error) {
	return h.store.lookup(h.namespace, name)
}

// GetAll returns the entries registered directly under the handle's
// namespace, in the order they were first registered. Entries in deeper
// namespaces are not included. The result is empty, never an error, when
// nothing is registered.
func (h Handle) GetAll() []Entry {
	return h.store.entries(h.namespace)
}
