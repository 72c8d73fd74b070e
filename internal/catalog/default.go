package catalog

// defaultStore backs the package-level functions. Hosts that want isolated
// lifecycles (one store per application instance, reset between tests)
// should construct their own store with New and ignore these.
var defaultStore = New()

// Default returns the process-wide store used by the package-level
// functions.
func Default() *Store {
	return defaultStore
}

// Create returns a handle bound to namespace segments on the default store.
func Create(segments ...string) Handle {
	return defaultStore.Create(segments...)
}

// CheckExists reports subtree existence on the default store.
func CheckExists(segments ...string) bool {
	return defaultStore.CheckExists(segments...)
}

// Reset clears the default store. Intended for tests.
func Reset() {
	defaultStore.Reset()
}
