package core

import (
	"math/rand"
	"testing"
)

func p(size uint64, mtime int64) Entry { return NewPresentEntry(size, mtime) }
func ts() Entry                        { return NewTombstoneEntry() }

func TestMergeIdenticalTips(t *testing.T) {
	h := History{p(1, 1), p(2, 2)}
	got := Merge(h, h.Clone())
	if !got.Equal(h) {
		t.Fatalf("Merge(h, h) = %v, want %v", got, h)
	}
}

func TestMergeLeftAhead(t *testing.T) {
	left := History{p(1, 1), p(2, 2), p(3, 3)}
	right := History{p(1, 1)}
	got := Merge(left, right)
	if !got.Equal(left) {
		t.Fatalf("Merge(left ahead, right) = %v, want %v", got, left)
	}
}

func TestMergeRightAhead(t *testing.T) {
	left := History{p(1, 1)}
	right := History{p(1, 1), p(2, 2), p(3, 3)}
	got := Merge(left, right)
	if !got.Equal(right) {
		t.Fatalf("Merge(left, right ahead) = %v, want %v", got, right)
	}
}

func TestMergeDivergedTiesTowardRight(t *testing.T) {
	// Both sides diverge from a common root with entries unique to each.
	// Right's unique tail must appear before left's unique tail.
	left := History{p(1, 1), p(2, 2)}
	right := History{p(1, 1), p(3, 3)}
	got := Merge(left, right)
	want := History{p(1, 1), p(3, 3), p(2, 2)}
	if !got.Equal(want) {
		t.Fatalf("Merge(diverged) = %v, want %v", got, want)
	}
}

func TestMergeNoCommonEntry(t *testing.T) {
	left := History{p(1, 1)}
	right := History{p(2, 2)}
	got := Merge(left, right)
	want := History{p(2, 2), p(1, 1)}
	if !got.Equal(want) {
		t.Fatalf("Merge(no common) = %v, want %v", got, want)
	}
}

func TestMergeWithTombstones(t *testing.T) {
	left := History{p(1, 1), ts(), p(2, 2)}
	right := History{p(1, 1), ts()}
	got := Merge(left, right)
	if !got.Equal(left) {
		t.Fatalf("Merge = %v, want %v", got, left)
	}
}

// TestMergeIdempotent checks property P4: Merge(Merge(a, b), b) == Merge(a, b).
func TestMergeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a, b := randomHistoryPair(rng)
		once := Merge(a, b)
		twice := Merge(once, b)
		if !once.Equal(twice) {
			t.Fatalf("not idempotent:\na=%v\nb=%v\nMerge(a,b)=%v\nMerge(Merge(a,b),b)=%v", a, b, once, twice)
		}
	}
}

// TestMergeIsSuperset checks property P2: every entry of both inputs appears
// in the output, i.e. no entry is ever discarded by a merge.
func TestMergeIsSuperset(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a, b := randomHistoryPair(rng)
		merged := Merge(a, b)
		for _, e := range a {
			if !containsEntry(merged, e) {
				t.Fatalf("Merge dropped left entry %v: a=%v b=%v merged=%v", e, a, b, merged)
			}
		}
		for _, e := range b {
			if !containsEntry(merged, e) {
				t.Fatalf("Merge dropped right entry %v: a=%v b=%v merged=%v", e, a, b, merged)
			}
		}
	}
}

// TestMergeOutputWellFormed checks property P3: a merge of two well-formed
// histories that share a first entry (as every pair handled by the
// reconciler does, since all histories begin with the same creation) is
// itself well-formed.
func TestMergeOutputWellFormed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a, b := randomRelatedHistoryPair(rng)
		merged := Merge(a, b)
		if err := merged.EnsureValid(); err != nil {
			t.Fatalf("Merge produced invalid history: %v\na=%v\nb=%v\nmerged=%v", err, a, b, merged)
		}
	}
}

func containsEntry(h History, e Entry) bool {
	for _, candidate := range h {
		if candidate.Equal(e) {
			return true
		}
	}
	return false
}

// randomHistoryPair generates two independently-random, individually
// well-formed histories with no guaranteed relationship, for properties that
// must hold even for unrelated histories (P2, P4).
func randomHistoryPair(rng *rand.Rand) (History, History) {
	return randomHistory(rng, rng.Intn(5)+1, rng.Int63n(1000)), randomHistory(rng, rng.Intn(5)+1, rng.Int63n(1000))
}

// randomRelatedHistoryPair generates two histories that share a common first
// entry, modeling the only case the reconciler ever merges in practice.
func randomRelatedHistoryPair(rng *rand.Rand) (History, History) {
	root := p(1, 0)
	a := append(History{root}, randomHistory(rng, rng.Intn(4), rng.Int63n(1000)+1)...)
	b := append(History{root}, randomHistory(rng, rng.Intn(4), rng.Int63n(1000)+1)...)
	return fixAdjacent(a), fixAdjacent(b)
}

// randomHistory generates a well-formed random history of roughly n entries
// starting mtimes at startMtime.
func randomHistory(rng *rand.Rand, n int, startMtime int64) History {
	h := History{p(uint64(rng.Intn(100)+1), startMtime)}
	mtime := startMtime
	for i := 1; i < n; i++ {
		mtime++
		if rng.Intn(3) == 0 && h.Tip().IsPresent() {
			h = append(h, ts())
			continue
		}
		h = append(h, p(uint64(rng.Intn(100)+1), mtime))
	}
	return fixAdjacent(h)
}

// fixAdjacent repairs H2/H3 violations that random generation might
// introduce (adjacent tombstones, adjacent identical present entries) by
// dropping the offending later entry.
func fixAdjacent(h History) History {
	if len(h) == 0 {
		return h
	}
	out := History{h[0]}
	for i := 1; i < len(h); i++ {
		prev, cur := out[len(out)-1], h[i]
		if !prev.IsPresent() && !cur.IsPresent() {
			continue
		}
		if prev.IsPresent() && cur.IsPresent() && prev.Equal(cur) {
			continue
		}
		out = append(out, cur)
	}
	return out
}
