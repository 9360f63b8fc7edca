// Package bisync wires the dependency-free reconciliation core, the
// filesystem-backed sources, and a set of synchronization options into a
// single Run entry point. It is the layer a command line interface (or any
// other embedder) calls into; it does not itself read flags or prompt a
// user.
package bisync
