package core

import (
	"fmt"
)

// LoadIndex loads the persisted index from source, returning an empty index
// if none exists yet. A persisted index that exists but cannot be parsed
// yields a *CorruptIndexError.
func LoadIndex(replica string, source Source) (Index, error) {
	exists, err := source.Exists(IndexPath)
	if err != nil {
		return nil, &SourceError{Replica: replica, Path: IndexPath, Op: "Exists", Err: err}
	}
	if !exists {
		return make(Index), nil
	}

	data, err := source.ReadMemory(IndexPath)
	if err != nil {
		return nil, &SourceError{Replica: replica, Path: IndexPath, Op: "ReadMemory", Err: err}
	}

	idx, err := UnmarshalIndex(data)
	if err != nil {
		return nil, &CorruptIndexError{Replica: replica, Err: err}
	}
	return idx, nil
}

// SaveIndex persists idx to source using the staged-rename two-phase write
// described in spec section 4.2.1: the serialized index is written to
// IndexPath+StagingSuffix and then renamed onto IndexPath, so that a reader
// never observes a truncated index.
func SaveIndex(replica string, source Source, idx Index) error {
	data, err := idx.Marshal()
	if err != nil {
		return fmt.Errorf("unable to marshal index for replica %q: %w", replica, err)
	}

	stagingPath := IndexPath + StagingSuffix
	if err := source.WriteMemory(stagingPath, data); err != nil {
		return &SourceError{Replica: replica, Path: stagingPath, Op: "WriteMemory", Err: err}
	}
	if err := source.Rename(stagingPath, IndexPath); err != nil {
		return &SourceError{Replica: replica, Path: IndexPath, Op: "Rename", Err: err}
	}
	return nil
}

// ExcludeFunc reports whether a path should be excluded from tracking,
// beyond the always-reserved paths handled internally by this package (see
// IsReserved). A nil ExcludeFunc excludes nothing additional.
type ExcludeFunc func(path string) bool

// BuildIndex implements the index builder (spec section 4.2): it scans
// source, loads its persisted index, and returns an updated index reflecting
// local creations, modifications, and deletions observed since the last
// build. It does not persist the result; callers that want the classic
// build-then-save behavior should follow up with SaveIndex (see
// BuildAndSaveIndex for a convenience wrapper).
func BuildIndex(replica string, source Source, exclude ExcludeFunc) (Index, error) {
	// Step 1: scan the live tree into current: path -> (size, mtime),
	// skipping excluded paths.
	entries, err := source.Walk()
	if err != nil {
		return nil, &SourceError{Replica: replica, Op: "Walk", Err: err}
	}
	current := make(map[string]WalkEntry, len(entries))
	for _, entry := range entries {
		if IsReserved(entry.Path) {
			continue
		}
		if exclude != nil && exclude(entry.Path) {
			continue
		}
		current[entry.Path] = entry
	}

	// Step 2: load the persisted index, or start from empty.
	prior, err := LoadIndex(replica, source)
	if err != nil {
		return nil, err
	}
	// Defensive re-filter: a persisted index may predate an exclusion rule
	// (e.g. a newly added --exclude pattern), so apply it here too.
	if exclude != nil {
		for path := range prior {
			if exclude(path) {
				delete(prior, path)
			}
		}
	}

	// Step 3: detect deletions. For each path present in the prior index but
	// absent from the current scan, append a tombstone if the last entry was
	// present; leave unchanged if it was already a tombstone.
	for path, history := range prior {
		if _, stillPresent := current[path]; stillPresent {
			continue
		}
		if len(history) == 0 {
			return nil, &InvariantViolationError{Replica: replica, Path: path, Reason: "empty history encountered"}
		}
		if history.Tip().IsPresent() {
			prior[path] = append(history, NewTombstoneEntry())
		}
	}

	// Step 4: detect creations and modifications.
	for path, entry := range current {
		history, known := prior[path]
		if !known {
			prior[path] = History{NewPresentEntry(entry.Size, entry.Mtime)}
			continue
		}
		if len(history) == 0 {
			return nil, &InvariantViolationError{Replica: replica, Path: path, Reason: "empty history encountered"}
		}
		last := history.Tip()
		changed := last.IsTombstone() || last.Size() != entry.Size || last.Mtime() != entry.Mtime
		if changed {
			prior[path] = append(history, NewPresentEntry(entry.Size, entry.Mtime))
		}
	}

	// Step 5: the caller is responsible for assigning/persisting the result.
	return prior, nil
}

// BuildAndSaveIndex runs BuildIndex and then persists the result via
// SaveIndex, matching the builder's full contract in spec section 4.2
// ("populate S.index ... and persist it").
func BuildAndSaveIndex(replica string, source Source, exclude ExcludeFunc) (Index, error) {
	idx, err := BuildIndex(replica, source, exclude)
	if err != nil {
		return nil, err
	}
	if err := SaveIndex(replica, source, idx); err != nil {
		return nil, err
	}
	return idx, nil
}
