package core

import (
	"encoding/json"
	"fmt"
)

// Index is a mapping from relative path to History. One Index exists per
// replica. It is held in memory during a run and persisted as a single
// document at IndexPath.
type Index map[string]History

// Clone returns a deep copy of the index, so that mutations to the result
// never affect the original.
func (idx Index) Clone() Index {
	out := make(Index, len(idx))
	for path, history := range idx {
		out[path] = history.Clone()
	}
	return out
}

// EnsureValid checks invariants H1-H4 for every history in the index.
func (idx Index) EnsureValid() error {
	for _, path := range sortedPaths(idx) {
		if err := idx[path].EnsureValid(); err != nil {
			return fmt.Errorf("path %q: %w", path, err)
		}
	}
	return nil
}

// Marshal serializes the index to its persisted textual representation: a
// JSON object mapping path to an array of entries, matching spec section
// 6.2 and the wire format of the original bisync implementation.
func (idx Index) Marshal() ([]byte, error) {
	return json.Marshal(map[string]History(idx))
}

// UnmarshalIndex parses the persisted textual representation of an index.
// Paths recognized as reserved (core.IsReserved) are dropped defensively, per
// spec section 3.5's requirement that the builder filter reserved paths both
// when walking the live tree and when loading a persisted index. A path that
// is not even well-formed (ValidatePath) indicates a corrupt or hand-edited
// index file and aborts the load entirely, rather than silently dropping
// history a user might expect to be preserved.
func UnmarshalIndex(data []byte) (Index, error) {
	var raw map[string]History
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	idx := make(Index, len(raw))
	for path, history := range raw {
		if IsReserved(path) {
			continue
		}
		if err := ValidatePath(path); err != nil {
			return nil, fmt.Errorf("invalid path in persisted index: %w", err)
		}
		idx[path] = history
	}
	return idx, nil
}
