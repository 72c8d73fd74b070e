package catalog

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Store holds all registered entries for one catalog instance. Entries live
// in a tree whose levels correspond to namespace segments; a node may hold a
// value, children, or both. The zero value is not usable; call New.
type Store struct {
	mu   sync.RWMutex
	root *node
	seq  int
}

// node is one level of the namespace tree. A node materializes the first
// time a registration touches it; its seq is assigned when the node first
// receives a value and never changes afterwards, so iteration order reflects
// first registration even across overwrites.
type node struct {
	children map[string]*node
	value    any
	hasValue bool
	seq      int
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// containsEntry reports whether the node or any descendant holds a value.
// Only the root can come up empty: deeper nodes materialize exclusively on
// registration, but checking keeps the empty-namespace case honest.
func (n *node) containsEntry() bool {
	if n.hasValue {
		return true
	}
	for _, child := range n.children {
		if child.containsEntry() {
			return true
		}
	}
	return false
}

// New creates an empty catalog store.
func New() *Store {
	return &Store{root: newNode()}
}

// Create returns a Handle bound to the given namespace. It never fails and
// has no effect on the store: tree levels materialize on first registration,
// not on handle creation. Multiple handles over the same namespace observe
// the same entries.
func (s *Store) Create(segments ...string) Handle {
	return Handle{store: s, namespace: slices.Clone(segments)}
}

// CheckExists reports whether at least one entry's full key has the given
// namespace as a prefix. The entry may sit deeper than the namespace itself;
// this is a subtree existence check, not a leaf lookup. It never fails.
func (s *Store) CheckExists(segments ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.walk(segments)
	return n != nil && n.containsEntry()
}

// Reset discards every entry, returning the store to its initial empty
// state. It exists as an explicit lifecycle point for tests; there is no
// per-entry unregistration.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = newNode()
	s.seq = 0
}

// walk follows segments from the root. Callers must hold s.mu. Returns nil
// when the path has never been touched by a registration.
func (s *Store) walk(segments []string) *node {
	n := s.root
	for _, seg := range segments {
		child, ok := n.children[seg]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// register stores value at namespace + [name], materializing intermediate
// tree levels as needed. Registering over an existing full key replaces the
// value silently and keeps the entry's original position in iteration order.
func (s *Store) register(namespace []string, name string, value any) {
	s.mu.Lock()
	n := s.root
	for _, seg := range namespace {
		child, ok := n.children[seg]
		if !ok {
			child = newNode()
			n.children[seg] = child
		}
		n = child
	}
	leaf, ok := n.children[name]
	if !ok {
		leaf = newNode()
		n.children[name] = leaf
	}
	overwrite := leaf.hasValue
	if !overwrite {
		s.seq++
		leaf.seq = s.seq
		leaf.hasValue = true
	}
	leaf.value = value
	s.mu.Unlock()

	slog.Debug("Registered catalog entry.", "key", joinKey(namespace, name), "overwrite", overwrite)
}

// lookup fetches the value at namespace + [name]. Absence is the only
// failure in the whole API; the error carries the dotted key and the names
// actually registered under the namespace to aid diagnosis.
func (s *Store) lookup(namespace []string, name string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ns := s.walk(namespace)
	if ns != nil {
		if leaf, ok := ns.children[name]; ok && leaf.hasValue {
			return leaf.value, nil
		}
	}
	return nil, &NotFoundError{
		Path:      joinKey(namespace, name),
		Available: directNames(ns),
	}
}

// entries returns the direct children of namespace that hold values, in
// first-registration order. Deeper descendants are excluded. Never fails; a
// namespace with no direct entries yields an empty slice.
func (s *Store) entries(namespace []string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ns := s.walk(namespace)
	if ns == nil {
		return nil
	}
	found := make([]Entry, 0, len(ns.children))
	for name, child := range ns.children {
		if child.hasValue {
			found = append(found, Entry{Name: name, Value: child.value, seq: child.seq})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].seq < found[j].seq })
	return found
}

// directNames lists the value-holding direct children of ns in registration
// order. ns may be nil.
func directNames(ns *node) []string {
	if ns == nil {
		return nil
	}
	entries := make([]Entry, 0, len(ns.children))
	for name, child := range ns.children {
		if child.hasValue {
			entries = append(entries, Entry{Name: name, seq: child.seq})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// joinKey renders a full key as a dotted path for logs and errors. The
// rendering is purely diagnostic; the store itself keys on the segment
// sequence, so segments containing dots stay unambiguous internally.
func joinKey(namespace []string, name string) string {
	if len(namespace) == 0 {
		return name
	}
	return strings.Join(namespace, ".") + "." + name
}
