package filesystem

import "github.com/nicolas-van/bisync/pkg/core"

// SimulateSource wraps another core.Source and discards every mutation
// (WriteMemory, CopyTo, Rename, Delete), while passing reads (Walk, Exists,
// ReadMemory, GetLocalName) straight through. Wrapping a replica's Source in
// a SimulateSource turns a run into a dry run: the reconciler computes
// exactly the same transfers and conflicts it would otherwise, but nothing
// on disk changes, and — since SaveIndex itself goes through WriteMemory and
// Rename — the persisted index is left untouched as well.
type SimulateSource struct {
	inner core.Source
}

// NewSimulateSource wraps inner in a SimulateSource.
func NewSimulateSource(inner core.Source) *SimulateSource {
	return &SimulateSource{inner: inner}
}

// Walk implements core.Source.
func (s *SimulateSource) Walk() ([]core.WalkEntry, error) { return s.inner.Walk() }

// Exists implements core.Source.
func (s *SimulateSource) Exists(path string) (bool, error) { return s.inner.Exists(path) }

// ReadMemory implements core.Source.
func (s *SimulateSource) ReadMemory(path string) ([]byte, error) { return s.inner.ReadMemory(path) }

// WriteMemory implements core.Source. It is a no-op.
func (s *SimulateSource) WriteMemory(path string, content []byte) error { return nil }

// CopyTo implements core.Source. It is a no-op.
func (s *SimulateSource) CopyTo(localPath, dest string) error { return nil }

// Rename implements core.Source. It is a no-op.
func (s *SimulateSource) Rename(from, to string) error { return nil }

// Delete implements core.Source. It is a no-op.
func (s *SimulateSource) Delete(path string) error { return nil }

// GetLocalName implements core.Source.
func (s *SimulateSource) GetLocalName(path string) (string, error) { return s.inner.GetLocalName(path) }
