package catalog

// Module is implemented by packages that contribute entries to a store.
// Hosts collect modules and call Register on each during startup; this keeps
// "calling Register is what populates the store" an explicit wiring step
// rather than a hidden side effect.
type Module interface {
	Register(s *Store)
}
