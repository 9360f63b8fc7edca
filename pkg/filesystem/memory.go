package filesystem

import (
	"fmt"
	"time"

	"github.com/nicolas-van/bisync/pkg/core"
)

// memoryFile is the content and modification time backing a path in a
// MemorySource.
type memoryFile struct {
	content []byte
	mtime   int64
}

// MemorySource is an in-memory core.Source. Two MemorySources that share a
// registry (see NewMemorySource) can exchange content through
// CopyTo/GetLocalName exactly as two LocalSources exchange it through the
// local filesystem; this makes it useful both for unit tests and for
// exercising SimulateSource/TrashSource without touching disk.
type MemorySource struct {
	files    map[string]memoryFile
	registry map[string]memoryFile
	localSeq int
}

// NewMemorySource constructs a MemorySource. Pass a shared, non-nil registry
// map to every MemorySource that must be able to exchange files with this
// one.
func NewMemorySource(registry map[string]memoryFile) *MemorySource {
	return &MemorySource{files: make(map[string]memoryFile), registry: registry}
}

// NewMemoryRegistry constructs a registry map suitable for passing to
// NewMemorySource.
func NewMemoryRegistry() map[string]memoryFile {
	return make(map[string]memoryFile)
}

// Set installs content directly at path, bypassing Walk-visible semantics.
// It is primarily useful for test setup.
func (s *MemorySource) Set(path string, content []byte, mtime time.Time) {
	s.files[path] = memoryFile{content: content, mtime: mtime.Unix()}
}

// Walk implements core.Source.
func (s *MemorySource) Walk() ([]core.WalkEntry, error) {
	entries := make([]core.WalkEntry, 0, len(s.files))
	for path, f := range s.files {
		entries = append(entries, core.WalkEntry{Path: path, Size: uint64(len(f.content)), Mtime: f.mtime})
	}
	return entries, nil
}

// Exists implements core.Source.
func (s *MemorySource) Exists(path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

// ReadMemory implements core.Source.
func (s *MemorySource) ReadMemory(path string) ([]byte, error) {
	f, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("memory source: %q not found", path)
	}
	return f.content, nil
}

// WriteMemory implements core.Source.
func (s *MemorySource) WriteMemory(path string, content []byte) error {
	s.files[path] = memoryFile{content: content, mtime: s.files[path].mtime}
	return nil
}

// CopyTo implements core.Source.
func (s *MemorySource) CopyTo(localPath, dest string) error {
	f, ok := s.registry[localPath]
	if !ok {
		return fmt.Errorf("memory source: local name %q not found", localPath)
	}
	s.files[dest] = f
	return nil
}

// Rename implements core.Source.
func (s *MemorySource) Rename(from, to string) error {
	f, ok := s.files[from]
	if !ok {
		return fmt.Errorf("memory source: %q not found for rename", from)
	}
	delete(s.files, from)
	s.files[to] = f
	return nil
}

// Delete implements core.Source. It is a no-op if path does not exist.
func (s *MemorySource) Delete(path string) error {
	delete(s.files, path)
	return nil
}

// GetLocalName implements core.Source.
func (s *MemorySource) GetLocalName(path string) (string, error) {
	f, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("memory source: %q not found", path)
	}
	s.localSeq++
	key := fmt.Sprintf("%s#%d", path, s.localSeq)
	s.registry[key] = f
	return key, nil
}
