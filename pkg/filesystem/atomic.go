package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicolas-van/bisync/pkg/logging"
	"github.com/nicolas-van/bisync/pkg/must"
)

// temporaryNamePrefix is the file name prefix used for intermediate
// temporary files created during an atomic write.
const temporaryNamePrefix = ".bisync-tmp-"

// WriteFileAtomic writes data to path by way of an intermediate temporary
// file in the same directory, swapped into place with a rename. This
// guarantees that a reader never observes a partially written file and that
// a crash mid-write leaves the original file (or no file) in place, never a
// truncated one. It is exported for use by packages (such as encoding) that
// persist files outside of a core.Source.
func WriteFileAtomic(path string, data []byte, permissions os.FileMode, logger *logging.Logger) error {
	temporary, err := os.CreateTemp(filepath.Dir(path), temporaryNamePrefix)
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}

	if _, err = temporary.Write(data); err != nil {
		must.Close(temporary, logger)
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to write data to temporary file: %w", err)
	}

	if err = temporary.Close(); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	if err = os.Chmod(temporary.Name(), permissions); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to change file permissions: %w", err)
	}

	if err = renameCrossDevice(temporary.Name(), path); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to rename file into place: %w", err)
	}

	return nil
}

// renameCrossDevice renames from to to, falling back to a copy-and-remove if
// the rename fails because from and to reside on different devices (as can
// happen when a replica's staging area and target both live under a single
// mount but a caller has relocated one of them onto another filesystem).
func renameCrossDevice(from, to string) error {
	err := os.Rename(from, to)
	if err == nil {
		return nil
	}
	if !isCrossDeviceError(err) {
		return err
	}

	data, readErr := os.ReadFile(from)
	if readErr != nil {
		return err
	}
	info, statErr := os.Stat(from)
	if statErr != nil {
		return err
	}
	if writeErr := os.WriteFile(to, data, info.Mode()); writeErr != nil {
		return err
	}
	_ = os.Remove(from)
	return nil
}
