// Package manifest loads declarative catalog manifests and checks them
// against a live store.
//
// A manifest is an HCL file declaring which entries a deployment expects to
// find registered:
//
//	namespace "pkg.loaders" {
//	  entry "csv" {
//	    description = "reads comma separated values"
//	  }
//	  entry "json" {}
//	}
//
// Manifests do not register anything themselves; registration only happens
// when Go code calls into the catalog. Validate performs a strict parity
// check between the two sides, so a missing registration or an undeclared
// entry is surfaced at startup instead of at first lookup.
package manifest
