// Package encoding provides the load/save helpers used by the global
// configuration file: read-then-decode
// with os.IsNotExist passed through unchanged, and encode-then-write using
// an atomic rename so a reader never observes a partial file.
package encoding

import (
	"fmt"
	"os"

	"github.com/nicolas-van/bisync/pkg/filesystem"
	"github.com/nicolas-van/bisync/pkg/logging"
)

// LoadAndUnmarshal reads the file at path and invokes unmarshal (usually a
// closure) to decode it. An os.IsNotExist error is returned unchanged so
// that callers can distinguish "no such file" from "file exists but is
// invalid".
func LoadAndUnmarshal(path string, unmarshal func([]byte) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("unable to load file: %w", err)
	}
	if err := unmarshal(data); err != nil {
		return fmt.Errorf("unable to unmarshal data: %w", err)
	}
	return nil
}

// MarshalAndSave invokes marshal (usually a closure) and writes the result
// atomically to path with permissions 0600, since the global configuration
// file never needs to be group- or world-readable.
func MarshalAndSave(path string, marshal func() ([]byte, error), logger *logging.Logger) error {
	data, err := marshal()
	if err != nil {
		return fmt.Errorf("unable to marshal data: %w", err)
	}
	if err := filesystem.WriteFileAtomic(path, data, 0600, logger); err != nil {
		return fmt.Errorf("unable to write data: %w", err)
	}
	return nil
}
