package core

import "fmt"

// CorruptIndexError indicates that a persisted index could not be
// deserialized. It is fatal for the replica in question: the run aborts
// before any file mutation is attempted for that replica, so history is
// never silently discarded.
type CorruptIndexError struct {
	// Replica is the identifier of the replica whose index failed to parse.
	Replica string
	// Err is the underlying deserialization error.
	Err error
}

func (e *CorruptIndexError) Error() string {
	return fmt.Sprintf("corrupt index for replica %q: %v", e.Replica, e.Err)
}

func (e *CorruptIndexError) Unwrap() error {
	return e.Err
}

// InvariantViolationError indicates that an internal consistency check
// failed (for example, an empty history was encountered where a non-empty
// one was required). It is fatal and must never result in overwriting
// persisted state.
type InvariantViolationError struct {
	// Replica is the identifier of the replica where the violation was
	// detected, if applicable.
	Replica string
	// Path is the path at which the violation was detected, if applicable.
	Path string
	// Reason describes the violated invariant.
	Reason string
}

func (e *InvariantViolationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invariant violation in replica %q at %q: %s", e.Replica, e.Path, e.Reason)
	}
	return fmt.Sprintf("invariant violation in replica %q: %s", e.Replica, e.Reason)
}

// SourceError wraps an error returned by a Source operation with the
// replica and path for which it occurred. The failed transfer is not merged
// into either index. Reconciler.Sync returns the error at once, so the
// remaining paths of that pair are not attempted, and SynchronizeAll then
// returns without persisting any replica's index.
type SourceError struct {
	// Replica is the identifier of the replica on which the operation was
	// attempted.
	Replica string
	// Path is the path the operation concerned, if applicable.
	Path string
	// Op names the Source operation that failed (e.g. "CopyTo", "Delete").
	Op string
	// Err is the underlying error returned by the Source.
	Err error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s failed on replica %q at %q: %v", e.Op, e.Replica, e.Path, e.Err)
	}
	return fmt.Sprintf("%s failed on replica %q: %v", e.Op, e.Replica, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
