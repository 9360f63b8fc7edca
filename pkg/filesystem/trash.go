package filesystem

import (
	"path"

	"github.com/nicolas-van/bisync/pkg/core"
)

// TrashSource wraps another core.Source and reroutes Delete into a rename
// into the reserved trash folder instead of an outright removal, matching
// the original bisync implementation's default (non---no-trash) behavior.
// Every other operation passes straight through.
type TrashSource struct {
	inner core.Source
}

// NewTrashSource wraps inner in a TrashSource.
func NewTrashSource(inner core.Source) *TrashSource {
	return &TrashSource{inner: inner}
}

// Walk implements core.Source.
func (s *TrashSource) Walk() ([]core.WalkEntry, error) { return s.inner.Walk() }

// Exists implements core.Source.
func (s *TrashSource) Exists(p string) (bool, error) { return s.inner.Exists(p) }

// ReadMemory implements core.Source.
func (s *TrashSource) ReadMemory(p string) ([]byte, error) { return s.inner.ReadMemory(p) }

// WriteMemory implements core.Source.
func (s *TrashSource) WriteMemory(p string, content []byte) error {
	return s.inner.WriteMemory(p, content)
}

// CopyTo implements core.Source.
func (s *TrashSource) CopyTo(localPath, dest string) error { return s.inner.CopyTo(localPath, dest) }

// Rename implements core.Source.
func (s *TrashSource) Rename(from, to string) error { return s.inner.Rename(from, to) }

// Delete implements core.Source. Instead of removing path, it renames path
// to core.TrashFolder+"/"+path on the wrapped source, overwriting any
// previous trash entry at that location.
func (s *TrashSource) Delete(p string) error {
	return s.inner.Rename(p, path.Join(core.TrashFolder, p))
}

// GetLocalName implements core.Source.
func (s *TrashSource) GetLocalName(p string) (string, error) { return s.inner.GetLocalName(p) }
