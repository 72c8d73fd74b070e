package testutil

import (
	"strings"

	"github.com/vk/cataloggo/internal/catalog"
)

// StaticModule registers a fixed set of values, keyed by dotted full key,
// when wired into a store. It lets a test declare its registrations inline:
//
//	mod := &testutil.StaticModule{Entries: map[string]any{
//	    "pkg.loaders.csv": csvFn,
//	}}
type StaticModule struct {
	Entries map[string]any

	// Order fixes the registration order when it matters; keys absent from
	// Order are registered after it in unspecified order.
	Order []string
}

// Register wires the module's entries into s.
func (m *StaticModule) Register(s *catalog.Store) {
	done := make(map[string]bool)
	for _, key := range m.Order {
		if v, ok := m.Entries[key]; ok {
			registerDotted(s, key, v)
			done[key] = true
		}
	}
	for key, v := range m.Entries {
		if !done[key] {
			registerDotted(s, key, v)
		}
	}
}

func registerDotted(s *catalog.Store, dotted string, v any) {
	segments := strings.Split(dotted, ".")
	namespace, name := segments[:len(segments)-1], segments[len(segments)-1]
	s.Create(namespace...).Register(name, v)
}

// NoopModule registers nothing. It is useful for tests that need a valid
// module list but want an empty store.
type NoopModule struct{}

// Register is a no-op.
func (m *NoopModule) Register(s *catalog.Store) {}
