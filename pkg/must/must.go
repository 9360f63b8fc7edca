// Package must wraps operations that return an error which, in practice, a
// caller cannot usefully react to beyond logging it — closing a file that is
// only open for reading, removing a temporary file after a failed write. It
// exists so that these cleanup calls don't need an inline error check at
// every call site.
package must

import (
	"io"
	"os"

	"github.com/nicolas-van/bisync/pkg/logging"
)

// Close closes c, logging a warning on failure.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("unable to close: %v", err)
	}
}

// OSRemove removes the file at name, logging a warning on failure.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil {
		logger.Warnf("unable to remove %q: %v", name, err)
	}
}
