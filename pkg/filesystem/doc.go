// Package filesystem provides the concrete core.Source implementations that
// the reconciliation core operates against: a real filesystem replica, an
// in-memory replica for tests, and the simulate/trash decorators that wrap
// either one, plus the atomic-write primitive they share.
package filesystem
