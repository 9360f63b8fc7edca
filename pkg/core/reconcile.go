package core

import "fmt"

// Reconciler performs pairwise reconciliation between replicas (spec section
// 4.4) and orchestrates a multi-replica run. It holds the two extension
// points named in the spec: a ConfirmationPolicy gating transfers, and a
// ConflictResolver deciding which side wins when histories have diverged
// past their last common revision.
type Reconciler struct {
	Confirm  ConfirmationPolicy
	Resolve  ConflictResolver
	Exclude  ExcludeFunc
	// OnEvent, if non-nil, is called once for every transfer, deletion,
	// conflict, and skip the reconciler performs, so that a caller (the CLI,
	// tests) can log or display progress without core depending on a
	// logging package. It is never required for correctness.
	OnEvent func(Event)
}

// EventKind identifies the kind of Event reported through Reconciler.OnEvent.
type EventKind int

const (
	// EventCopy indicates a file was copied from one replica to another. A
	// declined copy is reported as EventSkipped instead.
	EventCopy EventKind = iota
	// EventDelete indicates a file was deleted on the destination replica.
	EventDelete
	// EventConflict indicates two replicas had diverged past their last
	// common revision and a ConflictResolver picked a winner.
	EventConflict
	// EventSkipped indicates a ConfirmationPolicy declined a transfer.
	EventSkipped
)

// Event describes one action (or skipped action) taken during
// reconciliation. Size and Mtime describe the entry being transferred (the
// tip of the "from" side's history at the time of the event) and are only
// meaningful for EventCopy and EventSkipped where the skipped action was a
// copy; they are zero for EventDelete and for an EventConflict, which
// precedes the transfer it leads to.
type Event struct {
	Kind  EventKind
	From  string
	To    string
	Path  string
	Size  uint64
	Mtime int64
}

func (r *Reconciler) emit(kind EventKind, from, to, path string, tip Entry) {
	if r.OnEvent != nil {
		event := Event{Kind: kind, From: from, To: to, Path: path}
		if tip.IsPresent() {
			event.Size = tip.Size()
			event.Mtime = tip.Mtime()
		}
		r.OnEvent(event)
	}
}

// NewReconciler constructs a Reconciler with the given ConfirmationPolicy and
// ConflictResolver. Either may be nil, in which case AutomaticConfirmationPolicy
// and DefaultConflictResolver are used.
func NewReconciler(confirm ConfirmationPolicy, resolve ConflictResolver) *Reconciler {
	if confirm == nil {
		confirm = AutomaticConfirmationPolicy{}
	}
	if resolve == nil {
		resolve = DefaultConflictResolver{}
	}
	return &Reconciler{Confirm: confirm, Resolve: resolve}
}

// mergeVersions assigns Merge(from.Index[path], to.Index[path]) to both
// replicas' indices for path (spec section 4.4's merge_versions, and
// property M5). from.Index[path] must be non-empty; to.Index[path] may be
// absent, in which case it is treated as empty.
func (r *Reconciler) mergeVersions(from, to *Replica, path string) {
	merged := Merge(from.Index[path], to.Index[path])
	from.Index[path] = merged
	to.Index[path] = merged.Clone()
}

// transfer carries a version of path from replica "from" to replica "to"
// (spec section 4.4's transfer). It consults the ConfirmationPolicy at the
// appropriate decision point and, on decline, skips the transfer entirely
// (spec section 7's UserDecline: not an error, no merge performed). On a
// Source failure it returns a *SourceError without having called
// mergeVersions, leaving both indices exactly as they were before the call.
func (r *Reconciler) transfer(from, to *Replica, path string) error {
	fromHistory := from.Index[path]
	toHistory, toKnown := to.Index[path]
	tipFrom := fromHistory.Tip()

	if tipFrom.IsTombstone() {
		if toKnown && toHistory.Tip().IsPresent() {
			if !r.Confirm.ConfirmDelete(from.Name, to.Name, path) {
				r.emit(EventSkipped, from.Name, to.Name, path, tipFrom)
				return nil
			}
			if err := to.Source.Delete(path); err != nil {
				return &SourceError{Replica: to.Name, Path: path, Op: "Delete", Err: err}
			}
			r.emit(EventDelete, from.Name, to.Name, path, tipFrom)
		}
		// Otherwise "to" is already absent or a tombstone: no file operation
		// is required, but the histories still need merging below.
	} else {
		var confirmed bool
		if !toKnown || toHistory.Tip().IsTombstone() {
			confirmed = r.Confirm.ConfirmCopy(from.Name, to.Name, path)
		} else {
			confirmed = r.Confirm.ConfirmReplace(from.Name, to.Name, path)
		}
		if !confirmed {
			r.emit(EventSkipped, from.Name, to.Name, path, tipFrom)
			return nil
		}

		localName, err := from.Source.GetLocalName(path)
		if err != nil {
			return &SourceError{Replica: from.Name, Path: path, Op: "GetLocalName", Err: err}
		}
		stagingPath := path + StagingSuffix
		if err := to.Source.CopyTo(localName, stagingPath); err != nil {
			return &SourceError{Replica: to.Name, Path: stagingPath, Op: "CopyTo", Err: err}
		}
		if err := to.Source.Rename(stagingPath, path); err != nil {
			return &SourceError{Replica: to.Name, Path: path, Op: "Rename", Err: err}
		}
		r.emit(EventCopy, from.Name, to.Name, path, tipFrom)
	}

	r.mergeVersions(from, to, path)
	return nil
}

// resolveAndTransfer invokes the ConflictResolver for path and transfers from
// the winning side to the losing side.
func (r *Reconciler) resolveAndTransfer(left, right *Replica, path string) error {
	winner := r.Resolve.Resolve(path, left.Index[path], right.Index[path])
	r.emit(EventConflict, left.Name, right.Name, path, Entry{})
	if winner == SideLeft {
		return r.transfer(left, right, path)
	}
	return r.transfer(right, left, path)
}

// Sync performs pairwise reconciliation between left and right (spec section
// 4.4). Phase 1 walks every path known to left; phase 2 walks every
// left-unknown path known to right. Both replicas' indices are mutated in
// place as transfers and merges occur.
func (r *Reconciler) Sync(left, right *Replica) error {
	// Phase 1: every path in left's index.
	for _, path := range sortedPaths(left.Index) {
		leftHistory := left.Index[path]
		rightHistory, rightKnown := right.Index[path]

		if !rightKnown {
			// Right is simply missing the file.
			if err := r.transfer(left, right, path); err != nil {
				return err
			}
			continue
		}

		if leftHistory.Tip().Equal(rightHistory.Tip()) {
			// No data transfer required, but histories may still need
			// aligning (property M5, scenario 9 in spec section 8).
			r.mergeVersions(left, right, path)
			continue
		}

		// Find the last common revision by scanning backwards from both
		// tips.
		i := len(leftHistory) - 1
		j := len(rightHistory) - 1
		for j >= 0 {
			if leftHistory[i].Equal(rightHistory[j]) {
				break
			}
			i--
			if i == -1 {
				i = len(leftHistory) - 1
				j--
			}
		}

		switch {
		case j < 0:
			// No common entry was found: treat as a conflict between two
			// histories with no shared ancestry.
			if err := r.resolveAndTransfer(left, right, path); err != nil {
				return err
			}
		case i == len(leftHistory)-1:
			// The common point is the tip of left: left is behind.
			if err := r.transfer(right, left, path); err != nil {
				return err
			}
		case j == len(rightHistory)-1:
			// The common point is the tip of right: right is behind.
			if err := r.transfer(left, right, path); err != nil {
				return err
			}
		default:
			// Both sides moved past the common point.
			if err := r.resolveAndTransfer(left, right, path); err != nil {
				return err
			}
		}
	}

	// Phase 2: paths known only to right.
	for _, path := range sortedPaths(right.Index) {
		if _, known := left.Index[path]; known {
			continue
		}
		if err := r.transfer(right, left, path); err != nil {
			return err
		}
	}

	return nil
}

// SynchronizeAll builds each replica's index, performs pairwise
// reconciliation over every unordered pair (spec section 4.4's pair
// iteration), and persists each replica's index. It restricts iteration to
// i < j: sync is symmetric in its effect on both replicas' indices, so
// visiting the pair (i, j) with i < j reconciles the same two replicas as
// (j, i) would, and the i == j self-merge is a no-op (see DESIGN.md's
// record of this Open Question).
func SynchronizeAll(replicas []*Replica, exclude ExcludeFunc, confirm ConfirmationPolicy, resolve ConflictResolver, onEvent func(Event)) error {
	r := NewReconciler(confirm, resolve)
	r.Exclude = exclude
	r.OnEvent = onEvent

	for _, replica := range replicas {
		idx, err := BuildIndex(replica.Name, replica.Source, exclude)
		if err != nil {
			return fmt.Errorf("building index for replica %q: %w", replica.Name, err)
		}
		replica.Index = idx
	}

	for i := 0; i < len(replicas); i++ {
		for j := i + 1; j < len(replicas); j++ {
			if err := r.Sync(replicas[i], replicas[j]); err != nil {
				return fmt.Errorf("synchronizing %q with %q: %w", replicas[i].Name, replicas[j].Name, err)
			}
		}
	}

	for _, replica := range replicas {
		if err := SaveIndex(replica.Name, replica.Source, replica.Index); err != nil {
			return fmt.Errorf("saving index for replica %q: %w", replica.Name, err)
		}
	}

	return nil
}
