package bisync

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/nicolas-van/bisync/pkg/core"
	"github.com/nicolas-van/bisync/pkg/filesystem"
	"github.com/nicolas-van/bisync/pkg/logging"
)

// Options controls a single call to Run. Confirm and Resolve default to
// core.AutomaticConfirmationPolicy and core.DefaultConflictResolver (via
// core.NewReconciler) when left nil, which corresponds to running with
// --full-auto.
type Options struct {
	// Simulate discards every mutation instead of applying it: every replica
	// is wrapped in a filesystem.SimulateSource, so a run reports exactly
	// what it would have done without touching anything. Simulate implies
	// NoTrash, since there is nothing to trash.
	Simulate bool
	// NoTrash deletes files outright instead of rerouting deletions into
	// core.TrashFolder via a filesystem.TrashSource.
	NoTrash bool
	// Exclude lists additional doublestar glob patterns to exclude from
	// tracking, beyond the paths core.IsReserved already excludes.
	Exclude []string
	// Confirm gates individual transfers. If nil, every transfer proceeds
	// without confirmation.
	Confirm core.ConfirmationPolicy
	// Resolve picks a winner when two replicas have diverged past their last
	// common revision. If nil, core.DefaultConflictResolver is used.
	Resolve core.ConflictResolver
	// Logger receives progress output. If nil, logging.RootLogger is used.
	Logger *logging.Logger
}

// Run opens one replica per entry in folders, reconciles every pair, and
// persists the resulting indices. Folders are identified in log output and
// confirmation prompts by their given path.
func Run(folders []string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.RootLogger
	}

	runID, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("unable to generate run identifier: %w", err)
	}
	logger = logger.Sublogger(runID.String()[:8])

	if len(folders) < 2 {
		return fmt.Errorf("at least two folders are required, got %d", len(folders))
	}

	exclude, err := filesystem.NewExcludeFunc(opts.Exclude)
	if err != nil {
		return fmt.Errorf("invalid exclude pattern: %w", err)
	}

	noTrash := opts.NoTrash || opts.Simulate

	replicas := make([]*core.Replica, len(folders))
	for i, folder := range folders {
		replicaLogger := logger.Sublogger(fmt.Sprintf("replica[%d]", i))

		local, err := filesystem.NewLocalSource(folder, replicaLogger)
		if err != nil {
			return fmt.Errorf("unable to open folder %q: %w", folder, err)
		}

		var source core.Source = local
		if opts.Simulate {
			source = filesystem.NewSimulateSource(source)
		} else {
			if err := sweepStaging(folder, source, replicaLogger); err != nil {
				return err
			}
			if !noTrash {
				source = filesystem.NewTrashSource(source)
			}
		}

		replicas[i] = &core.Replica{Name: folder, Source: source}
	}

	onEvent := func(event core.Event) {
		logEvent(logger, event)
	}

	logger.Infof("starting run across %d replicas", len(replicas))
	if err := core.SynchronizeAll(replicas, exclude, opts.Confirm, opts.Resolve, onEvent); err != nil {
		return err
	}
	logger.Infof("run complete")
	return nil
}

// logEvent renders a core.Event to logger at the info level.
func logEvent(logger *logging.Logger, event core.Event) {
	switch event.Kind {
	case core.EventCopy:
		logger.Infof("%s -> %s: copied %s (%s)", event.From, event.To, event.Path, humanize.Bytes(event.Size))
	case core.EventDelete:
		logger.Infof("%s -> %s: deleted %s", event.From, event.To, event.Path)
	case core.EventConflict:
		logger.Infof("%s <-> %s: resolving conflict on %s", event.From, event.To, event.Path)
	case core.EventSkipped:
		logger.Infof("%s -> %s: skipped %s (not confirmed)", event.From, event.To, event.Path)
	}
}
