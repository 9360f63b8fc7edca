package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nicolas-van/bisync/pkg/core"
	"github.com/nicolas-van/bisync/pkg/logging"
)

// LocalSource is a core.Source backed by a real directory on the local
// filesystem.
type LocalSource struct {
	root   string
	logger *logging.Logger
}

// NewLocalSource constructs a LocalSource rooted at root. The directory must
// already exist.
func NewLocalSource(root string, logger *logging.Logger) (*LocalSource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("unable to stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve absolute path for %q: %w", root, err)
	}
	return &LocalSource{root: abs, logger: logger}, nil
}

// Root returns the absolute path this source is rooted at.
func (s *LocalSource) Root() string {
	return s.root
}

func (s *LocalSource) absolute(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

// Walk implements core.Source.
func (s *LocalSource) Walk() ([]core.WalkEntry, error) {
	var entries []core.WalkEntry
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, core.WalkEntry{
			Path:  filepath.ToSlash(rel),
			Size:  uint64(info.Size()),
			Mtime: info.ModTime().Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Exists implements core.Source.
func (s *LocalSource) Exists(path string) (bool, error) {
	_, err := os.Stat(s.absolute(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadMemory implements core.Source.
func (s *LocalSource) ReadMemory(path string) ([]byte, error) {
	return os.ReadFile(s.absolute(path))
}

// WriteMemory implements core.Source.
func (s *LocalSource) WriteMemory(path string, content []byte) error {
	abs := s.absolute(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("unable to create parent directories: %w", err)
	}
	return WriteFileAtomic(abs, content, 0644, s.logger)
}

// CopyTo implements core.Source. The destination's modification time is set
// to match localPath's.
func (s *LocalSource) CopyTo(localPath, dest string) error {
	info, err := os.Stat(localPath)
	if err != nil {
		return fmt.Errorf("unable to stat local file: %w", err)
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("unable to read local file: %w", err)
	}
	abs := s.absolute(dest)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("unable to create parent directories: %w", err)
	}
	if err := WriteFileAtomic(abs, data, 0644, s.logger); err != nil {
		return err
	}
	if err := os.Chtimes(abs, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("unable to set modification time: %w", err)
	}
	return nil
}

// Rename implements core.Source.
func (s *LocalSource) Rename(from, to string) error {
	absFrom := s.absolute(from)
	absTo := s.absolute(to)
	if err := os.MkdirAll(filepath.Dir(absTo), 0755); err != nil {
		return fmt.Errorf("unable to create parent directories: %w", err)
	}
	return renameCrossDevice(absFrom, absTo)
}

// Delete implements core.Source. It is a no-op if path does not exist, and
// removes now-empty ancestor directories up to (but not including) the
// source's root.
func (s *LocalSource) Delete(path string) error {
	abs := s.absolute(path)
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	s.pruneEmptyAncestors(filepath.Dir(abs))
	return nil
}

func (s *LocalSource) pruneEmptyAncestors(dir string) {
	for len(dir) > len(s.root) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}

// GetLocalName implements core.Source.
func (s *LocalSource) GetLocalName(path string) (string, error) {
	abs := s.absolute(path)
	if _, err := os.Stat(abs); err != nil {
		return "", err
	}
	return abs, nil
}
