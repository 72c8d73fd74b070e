// Package catalog provides a process-wide, tree-shaped registry of named
// values.
//
// A catalog decouples configuration (a human-readable string) from the
// behavior it refers to: a package registers a function or object under a
// namespaced name, and any other part of the process can later retrieve it by
// that name. Namespaces are ordered sequences of string segments and form a
// prefix hierarchy, so ("pkg") is an ancestor of ("pkg", "loaders").
//
// Registration is expected to happen as a side effect of package wiring,
// typically from a Module's Register method during application startup.
// Calling Register is what populates the store; nothing is discovered
// automatically.
//
// The store guards each operation with a mutex, so a single Register or Get
// is atomic, but no ordering is guaranteed between concurrent registrations
// from different goroutines. The intended lifecycle is a sequential
// populate-at-startup phase followed by reads.
//
// Empty-string segments and empty namespaces are permitted: every operation
// except Get is total and treats an empty string as an ordinary segment.
// Keys built from empty segments are legal but hard to read in diagnostics,
// so callers are encouraged to avoid them.
package catalog
