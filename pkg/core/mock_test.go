package core

import "fmt"

// mockFile is the content backing a path in a mockSource.
type mockFile struct {
	content []byte
	mtime   int64
}

// mockSource is a minimal in-memory Source double used across this
// package's tests. Two mockSources participating in the same test share a
// registry map so that GetLocalName/CopyTo can move content between them,
// mirroring how a real Source pair moves bytes through the local
// filesystem.
type mockSource struct {
	files    map[string]mockFile
	registry map[string]mockFile
	localSeq int
}

// newMockSource constructs a mockSource. Pass the same registry map to every
// mockSource participating in a test so GetLocalName/CopyTo can see each
// other's content.
func newMockSource(registry map[string]mockFile) *mockSource {
	return &mockSource{files: make(map[string]mockFile), registry: registry}
}

func (s *mockSource) set(path string, size uint64, mtime int64) {
	s.files[path] = mockFile{content: make([]byte, size), mtime: mtime}
}

func (s *mockSource) Walk() ([]WalkEntry, error) {
	var out []WalkEntry
	for path, f := range s.files {
		out = append(out, WalkEntry{Path: path, Size: uint64(len(f.content)), Mtime: f.mtime})
	}
	return out, nil
}

func (s *mockSource) Exists(path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *mockSource) ReadMemory(path string) ([]byte, error) {
	f, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("mock source: %q not found", path)
	}
	return f.content, nil
}

func (s *mockSource) WriteMemory(path string, content []byte) error {
	s.files[path] = mockFile{content: content, mtime: s.files[path].mtime}
	return nil
}

func (s *mockSource) CopyTo(localPath, dest string) error {
	f, ok := s.registry[localPath]
	if !ok {
		return fmt.Errorf("mock source: local name %q not found", localPath)
	}
	s.files[dest] = f
	return nil
}

func (s *mockSource) Rename(from, to string) error {
	f, ok := s.files[from]
	if !ok {
		return fmt.Errorf("mock source: %q not found for rename", from)
	}
	delete(s.files, from)
	s.files[to] = f
	return nil
}

func (s *mockSource) Delete(path string) error {
	delete(s.files, path)
	return nil
}

func (s *mockSource) GetLocalName(path string) (string, error) {
	f, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("mock source: %q not found", path)
	}
	s.localSeq++
	key := fmt.Sprintf("%s#%d", path, s.localSeq)
	s.registry[key] = f
	return key, nil
}

// newMockPair returns two mockSources sharing a registry, suitable for
// passing to BuildIndex/Sync in pairs.
func newMockPair() (*mockSource, *mockSource) {
	reg := make(map[string]mockFile)
	return newMockSource(reg), newMockSource(reg)
}
