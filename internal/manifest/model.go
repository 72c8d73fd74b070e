package manifest

import (
	"slices"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Declaration is one declared entry: a full key the deployment expects to be
// registered, plus optional human-readable metadata from the manifest.
type Declaration struct {
	Namespace   []string
	Name        string
	Description string
	Meta        *cty.Value
	Source      string // manifest file the declaration came from
}

// Path returns the dotted full key of the declaration.
func (d *Declaration) Path() string {
	return strings.Join(append(slices.Clone(d.Namespace), d.Name), ".")
}

// Model is the merged, format-agnostic content of all loaded manifests.
// Declarations keep the order they appeared in across files.
type Model struct {
	Declarations []*Declaration

	index map[string]*Declaration
}

func newModel() *Model {
	return &Model{index: make(map[string]*Declaration)}
}

// add records a declaration, reporting a duplicate when the same full key
// was already declared. Manifest namespace labels cannot contain dots, so
// the dotted path is collision-free here.
func (m *Model) add(d *Declaration) (existing *Declaration, ok bool) {
	key := d.Path()
	if prev, dup := m.index[key]; dup {
		return prev, false
	}
	m.index[key] = d
	m.Declarations = append(m.Declarations, d)
	return nil, true
}

// Declared reports whether the full key namespace + [name] is declared.
func (m *Model) Declared(namespace []string, name string) bool {
	key := strings.Join(append(slices.Clone(namespace), name), ".")
	_, ok := m.index[key]
	return ok
}

// Namespaces returns the distinct declared namespaces in first-appearance
// order.
func (m *Model) Namespaces() [][]string {
	var out [][]string
	seen := make(map[string]struct{})
	for _, d := range m.Declarations {
		key := strings.Join(d.Namespace, ".")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, slices.Clone(d.Namespace))
	}
	return out
}

// In returns the declarations under exactly the given namespace, in
// declaration order.
func (m *Model) In(namespace []string) []*Declaration {
	var out []*Declaration
	for _, d := range m.Declarations {
		if slices.Equal(d.Namespace, namespace) {
			out = append(out, d)
		}
	}
	return out
}
