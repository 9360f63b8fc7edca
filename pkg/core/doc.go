// Package core implements the synchronization core: the version model, the
// index builder, the history merger, and the reconciler. It has no
// dependencies beyond the standard library, by design: every other package
// in this module depends on core, not the other way around.
package core
