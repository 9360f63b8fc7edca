package bisync

import (
	"fmt"
	"strings"

	"github.com/nicolas-van/bisync/pkg/core"
	"github.com/nicolas-van/bisync/pkg/logging"
)

// sweepStaging removes leftover staging-suffixed files from source: paths
// ending in core.StagingSuffix that an interrupted prior run left in place.
// There is no crash-recovery design beyond this: a run that is killed
// mid-transfer may leave such files behind, and the next run on that replica
// sweeps them before building its index.
func sweepStaging(replica string, source core.Source, logger *logging.Logger) error {
	entries, err := source.Walk()
	if err != nil {
		return fmt.Errorf("walking replica %q to sweep staging files: %w", replica, err)
	}
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Path, core.StagingSuffix) {
			continue
		}
		if err := source.Delete(entry.Path); err != nil {
			return fmt.Errorf("removing stale staging file %q on replica %q: %w", entry.Path, replica, err)
		}
		logger.Infof("removed stale staging file %q on replica %q", entry.Path, replica)
	}
	return nil
}
